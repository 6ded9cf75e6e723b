package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkravets/adaptive-survey/internal/bootstrap"
	"github.com/mkravets/adaptive-survey/internal/config"
	"github.com/mkravets/adaptive-survey/internal/core/domain"
	"github.com/mkravets/adaptive-survey/internal/observability/logging"
	"github.com/mkravets/adaptive-survey/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", workerMetrics.Handler())
		if err := http.ListenAndServe(":"+cfg.WorkerMetricsPort, mux); err != nil {
			logger.Error("metrics listener stopped", "error", err)
		}
	}()

	logger.Info("worker subscribed",
		"submit_subject", cfg.NATSSubmitSubject,
		"scored_subject", cfg.NATSScoredSubject,
	)
	err = app.Queue.SubscribeAnswerSubmitted(ctx, func(handlerCtx context.Context, submitted domain.AnswerSubmitted) error {
		assessCtx, cancel := context.WithTimeout(handlerCtx, 30*time.Second)
		defer cancel()

		workerMetrics.StartAssessment()
		start := time.Now()
		assessment := app.AssessUC.AssessAnswer(assessCtx, submitted)
		workerMetrics.FinishAssessment("worker", time.Since(start), nil)
		workerMetrics.ObserveScores("worker", assessment.Quality, assessment.Fatigue, assessment.StopHint)
		for _, slot := range assessment.Slots {
			if slot.Contradiction < 1 {
				workerMetrics.IncContradiction("worker")
			}
		}

		if err := app.Queue.PublishAnswerScored(assessCtx, assessment); err != nil {
			workerMetrics.IncPublishFailure("worker")
			return err
		}
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
