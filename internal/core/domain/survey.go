package domain

// Embedding is a fixed-dimensionality vector produced by the embedding model.
// An empty embedding means "unavailable": similarity against it is 0 and
// consumers fall back to their degenerate defaults.
type Embedding []float32

func (e Embedding) Empty() bool {
	return len(e) == 0
}

// AskedQuestion is one entry of the orchestrator-owned history of questions
// already shown in a session. The embedding is lazily computed and cached by
// the orchestrator; entries without one are skipped during redundancy checks.
type AskedQuestion struct {
	Text      string    `json:"text"`
	Embedding Embedding `json:"embedding,omitempty"`
}

type SlotPriority string

const (
	SlotPriorityCritical SlotPriority = "critical"
	SlotPriorityNormal   SlotPriority = "normal"
)

// SlotSchema is the static definition of one structured field a survey
// instance is trying to fill.
type SlotSchema struct {
	Name     string       `json:"name"`
	Priority SlotPriority `json:"priority"`
	Required bool         `json:"required"`
}

func (s SlotSchema) MustHave() bool {
	return s.Priority == SlotPriorityCritical || s.Required
}

// SlotState is the per-session mutable record for one slot. An empty Value
// means no value has been recorded yet.
type SlotState struct {
	Name       string  `json:"name"`
	Value      string  `json:"value,omitempty"`
	Confidence float64 `json:"confidence"`
}

// SlotView bundles the schema catalog with the per-session slot states.
// Both maps are owned by the caller; the engine only reads them.
type SlotView struct {
	Schemas map[string]SlotSchema
	States  map[string]SlotState
}

// Confidence reports the current confidence for a slot, 0 if the slot has no
// recorded state.
func (v SlotView) Confidence(name string) float64 {
	state, ok := v.States[name]
	if !ok {
		return 0
	}
	return state.Confidence
}

// QuestionTemplate is a catalog entry describing a candidate question and the
// slots answering it would inform.
type QuestionTemplate struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	SlotTargets []string `json:"slot_targets"`
}

// ConversationEntry is one answer in the session history, most-recent-last.
// Some producers fill Answer, older ones fill Text.
type ConversationEntry struct {
	Answer string `json:"answer,omitempty"`
	Text   string `json:"text,omitempty"`
}

func (e ConversationEntry) Body() string {
	if e.Answer != "" {
		return e.Answer
	}
	return e.Text
}

// RedundancyVerdict is the outcome of checking one candidate prompt against
// the asked-question history. Reject is a hard gate; Penalty is the soft
// discouragement derived from the same max-similarity pass.
type RedundancyVerdict struct {
	Reject        bool    `json:"reject"`
	Penalty       float64 `json:"penalty"`
	MaxSimilarity float64 `json:"max_similarity"`
}

// ScoredCandidate is one ranked template with its component scores.
type ScoredCandidate struct {
	Template   QuestionTemplate  `json:"template"`
	InfoGain   float64           `json:"info_gain"`
	Redundancy RedundancyVerdict `json:"redundancy"`
	Score      float64           `json:"score"`
}
