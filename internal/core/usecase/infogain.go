package usecase

import "github.com/mkravets/adaptive-survey/internal/core/domain"

// ExpectedInfoGain ranks how much unresolved slot uncertainty a template
// addresses. Slots without recorded state count as fully uncertain. Touching
// any critical or required slot earns a flat boost so must-have fields are
// not starved when their individual uncertainty is moderate.
func (e *Engine) ExpectedInfoGain(template domain.QuestionTemplate, slots domain.SlotView) float64 {
	if len(template.SlotTargets) == 0 {
		return 0
	}

	var uncertainty float64
	boost := 0.0
	for _, name := range template.SlotTargets {
		uncertainty += 1 - slots.Confidence(name)
		if schema, ok := slots.Schemas[name]; ok && schema.MustHave() {
			boost = e.cfg.CriticalBoost
		}
	}

	return clamp01(uncertainty/float64(len(template.SlotTargets)) + boost)
}
