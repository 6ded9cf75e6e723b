package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// Session is an offline snapshot of one survey session, used by surveyctl to
// replay selection and fatigue decisions against a catalog.
type Session struct {
	Asked   []domain.AskedQuestion     `yaml:"asked"`
	History []domain.ConversationEntry `yaml:"history"`
	Slots   []domain.SlotState         `yaml:"slots"`
}

func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &session, nil
}

// SlotView pairs the session's slot states with the catalog's schemas.
func (s *Session) SlotView(c *Catalog) domain.SlotView {
	states := make(map[string]domain.SlotState, len(s.Slots))
	for _, state := range s.Slots {
		states[state.Name] = state
	}
	return domain.SlotView{
		Schemas: c.SlotSchemas(),
		States:  states,
	}
}
