package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Band awards Points when the measured count is at least Min. Bands are
// mutually exclusive: only the highest matching band applies.
type Band struct {
	Min    int     `yaml:"min"`
	Points float64 `yaml:"points"`
}

// QualityHeuristics is the answer-quality scoring model expressed as data so
// the word lists and increments can be tuned from a config file without
// touching control flow. The defaults are a behavioral contract; rebalancing
// them changes every downstream fatigue and stop decision.
//
// Zero-valued fields mean "unset" and fall back to the defaults, same
// convention as Config. Disabling an individual bonus outright is not
// supported; the smallest effective value is an epsilon above zero.
type QualityHeuristics struct {
	IDKPhrases    []string `yaml:"idk_phrases"`
	DetailMarkers []string `yaml:"detail_markers"`

	LengthBands   []Band `yaml:"length_bands"`
	SentenceBands []Band `yaml:"sentence_bands"`

	DigitPoints  float64 `yaml:"digit_points"`
	DetailPoints float64 `yaml:"detail_points"`

	IDKPenalty float64 `yaml:"idk_penalty"`

	// ShortPenalty stacks on top of the length band for answers shorter than
	// ShortRuneFloor, double-penalizing one-word replies.
	ShortPenalty   float64 `yaml:"short_penalty"`
	ShortRuneFloor int     `yaml:"short_rune_floor"`
}

func DefaultQualityHeuristics() QualityHeuristics {
	return QualityHeuristics{
		IDKPhrases:    []string{"i don't know", "unsure", "not sure", "n/a", "no idea"},
		DetailMarkers: []string{"because", "since", "due to", "specifically", "example", "such as"},

		LengthBands: []Band{
			{Min: 101, Points: 0.4},
			{Min: 51, Points: 0.3},
			{Min: 21, Points: 0.2},
			{Min: 6, Points: 0.1},
		},
		SentenceBands: []Band{
			{Min: 3, Points: 0.3},
			{Min: 2, Points: 0.2},
		},

		DigitPoints:  0.2,
		DetailPoints: 0.2,

		IDKPenalty: 0.6,

		ShortPenalty:   0.3,
		ShortRuneFloor: 10,
	}
}

func (h QualityHeuristics) normalize() QualityHeuristics {
	def := DefaultQualityHeuristics()
	out := h
	if len(out.IDKPhrases) == 0 {
		out.IDKPhrases = def.IDKPhrases
	}
	if len(out.DetailMarkers) == 0 {
		out.DetailMarkers = def.DetailMarkers
	}
	if len(out.LengthBands) == 0 {
		out.LengthBands = def.LengthBands
	}
	if len(out.SentenceBands) == 0 {
		out.SentenceBands = def.SentenceBands
	}
	if out.DigitPoints == 0 {
		out.DigitPoints = def.DigitPoints
	}
	if out.DetailPoints == 0 {
		out.DetailPoints = def.DetailPoints
	}
	if out.IDKPenalty == 0 {
		out.IDKPenalty = def.IDKPenalty
	}
	if out.ShortPenalty == 0 {
		out.ShortPenalty = def.ShortPenalty
	}
	if out.ShortRuneFloor == 0 {
		out.ShortRuneFloor = def.ShortRuneFloor
	}
	return out
}

// phraseMatcher matches any of the phrases as whole words,
// case-insensitively. "not sure" must not fire on "notsureness".
func phraseMatcher(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) == 0 {
		return regexp.MustCompile(`$^`)
	}
	return regexp.MustCompile(`(?i)(^|[^a-z0-9])(` + strings.Join(quoted, "|") + `)([^a-z0-9]|$)`)
}

type qualityScorer struct {
	heuristics QualityHeuristics
	idk        *regexp.Regexp
	detail     *regexp.Regexp
}

func newQualityScorer(h QualityHeuristics) qualityScorer {
	h = h.normalize()
	return qualityScorer{
		heuristics: h,
		idk:        phraseMatcher(h.IDKPhrases),
		detail:     phraseMatcher(h.DetailMarkers),
	}
}

// score implements the additive point system: length band, sentence band,
// digit and detail bonuses, minus the don't-know and too-short penalties,
// clamped to [0,1]. Deterministic, no I/O.
func (s qualityScorer) score(answer string) float64 {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return 0
	}
	length := utf8.RuneCountInString(trimmed)

	quality := bandPoints(s.heuristics.LengthBands, length)
	quality += bandPoints(s.heuristics.SentenceBands, countSentences(trimmed))

	if strings.ContainsFunc(trimmed, unicode.IsDigit) {
		quality += s.heuristics.DigitPoints
	}
	if s.detail.MatchString(trimmed) {
		quality += s.heuristics.DetailPoints
	}
	if s.idk.MatchString(trimmed) {
		quality -= s.heuristics.IDKPenalty
	}
	if length < s.heuristics.ShortRuneFloor {
		quality -= s.heuristics.ShortPenalty
	}

	return clamp01(quality)
}

func bandPoints(bands []Band, count int) float64 {
	best := 0.0
	for _, band := range bands {
		if count >= band.Min && band.Points > best {
			best = band.Points
		}
	}
	return best
}

func countSentences(s string) int {
	fragments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// AnswerQuality scores a single free-text answer for depth and
// informativeness. Non-answers ("", whitespace) score 0.
func (e *Engine) AnswerQuality(answer string) float64 {
	return e.scorer.score(answer)
}
