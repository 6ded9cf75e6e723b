package domain

// AnswerSubmitted is the queue payload published by the survey orchestrator
// after a respondent submits a free-text answer. History is ordered
// most-recent-last and does not yet include Answer. ExtractedValues carries
// the slot values the orchestrator pulled out of the answer, keyed by slot
// name, for novelty/contradiction reconciliation.
type AnswerSubmitted struct {
	EventID         string              `json:"event_id"`
	SessionID       string              `json:"session_id"`
	Answer          string              `json:"answer"`
	History         []ConversationEntry `json:"history,omitempty"`
	SlotStates      []SlotState         `json:"slot_states,omitempty"`
	ExtractedValues map[string]string   `json:"extracted_values,omitempty"`
}

// SlotAssessment is the per-slot reconciliation result for one extracted
// value. Contradiction is 1 when the value is consistent with what is stored
// and 0.3 when it likely contradicts a weakly-held prior.
type SlotAssessment struct {
	Name          string  `json:"name"`
	Novelty       float64 `json:"novelty"`
	Contradiction float64 `json:"contradiction"`
}

// AnswerAssessment is the scored counterpart published back to the
// orchestrator.
type AnswerAssessment struct {
	EventID   string           `json:"event_id"`
	SessionID string           `json:"session_id"`
	Quality   float64          `json:"quality"`
	Fatigue   float64          `json:"fatigue"`
	StopHint  bool             `json:"stop_hint"`
	Slots     []SlotAssessment `json:"slots,omitempty"`
}
