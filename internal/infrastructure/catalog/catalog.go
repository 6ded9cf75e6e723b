// Package catalog loads the semi-static question-template catalog and the
// slot schema definitions from YAML. The catalog is read once at startup;
// per-session slot state stays with the orchestrator.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

type slotEntry struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"`
	Required bool   `yaml:"required"`
}

type templateEntry struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	SlotTargets []string `yaml:"slot_targets"`
}

type file struct {
	Slots     []slotEntry     `yaml:"slots"`
	Templates []templateEntry `yaml:"templates"`
}

type Catalog struct {
	templates []domain.QuestionTemplate
	schemas   map[string]domain.SlotSchema
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schemas := make(map[string]domain.SlotSchema, len(f.Slots))
	for _, slot := range f.Slots {
		if slot.Name == "" {
			return nil, fmt.Errorf("parse catalog: %w: slot without a name", domain.ErrInvalidInput)
		}
		priority := domain.SlotPriority(slot.Priority)
		if priority == "" {
			priority = domain.SlotPriorityNormal
		}
		if priority != domain.SlotPriorityNormal && priority != domain.SlotPriorityCritical {
			return nil, fmt.Errorf("parse catalog: %w: slot %q has unknown priority %q", domain.ErrInvalidInput, slot.Name, slot.Priority)
		}
		schemas[slot.Name] = domain.SlotSchema{
			Name:     slot.Name,
			Priority: priority,
			Required: slot.Required,
		}
	}

	templates := make([]domain.QuestionTemplate, 0, len(f.Templates))
	for _, tmpl := range f.Templates {
		if tmpl.ID == "" || tmpl.Prompt == "" {
			return nil, fmt.Errorf("parse catalog: %w: template needs id and prompt", domain.ErrInvalidInput)
		}
		for _, target := range tmpl.SlotTargets {
			if _, ok := schemas[target]; !ok {
				return nil, fmt.Errorf("parse catalog: %w: template %q targets unknown slot %q", domain.ErrInvalidInput, tmpl.ID, target)
			}
		}
		templates = append(templates, domain.QuestionTemplate{
			ID:          tmpl.ID,
			Prompt:      tmpl.Prompt,
			SlotTargets: tmpl.SlotTargets,
		})
	}

	return &Catalog{templates: templates, schemas: schemas}, nil
}

func (c *Catalog) Templates() []domain.QuestionTemplate {
	return c.templates
}

func (c *Catalog) SlotSchemas() map[string]domain.SlotSchema {
	return c.schemas
}

func (c *Catalog) TemplateByID(id string) (domain.QuestionTemplate, error) {
	for _, tmpl := range c.templates {
		if tmpl.ID == id {
			return tmpl, nil
		}
	}
	return domain.QuestionTemplate{}, fmt.Errorf("catalog lookup %q: %w", id, domain.ErrTemplateNotFound)
}
