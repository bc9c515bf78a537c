package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ParseModel decodes generator output into a model. The output may wrap the
// JSON object in a markdown fence. Defaults are applied before validation.
func ParseModel(raw string) (SystemModel, error) {
	payload := strings.TrimSpace(raw)
	if match := fencedJSON.FindStringSubmatch(payload); match != nil {
		payload = match[1]
	}

	model, err := DecodeModel([]byte(payload))
	if err != nil {
		return SystemModel{}, &ValidationError{Raw: raw, Err: fmt.Errorf("decode model json: %w", err)}
	}

	model.ApplyDefaults()

	if err := model.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Raw = raw
			return SystemModel{}, verr
		}
		return SystemModel{}, err
	}

	return model, nil
}

// ApplyDefaults fills the optional enum fields the generator may omit.
func (m *SystemModel) ApplyDefaults() {
	for i := range m.Entities {
		for j := range m.Entities[i].Attributes {
			if m.Entities[i].Attributes[j].Visibility == "" {
				m.Entities[i].Attributes[j].Visibility = VisibilityPrivate
			}
		}
		for j := range m.Entities[i].Methods {
			if m.Entities[i].Methods[j].Visibility == "" {
				m.Entities[i].Methods[j].Visibility = VisibilityPublic
			}
		}
	}
	for i := range m.Interactions {
		if m.Interactions[i].Kind == "" {
			m.Interactions[i].Kind = InteractionSequence
		}
		for j := range m.Interactions[i].Messages {
			if m.Interactions[i].Messages[j].Kind == "" {
				m.Interactions[i].Messages[j].Kind = MessageSync
			}
		}
	}
}
