package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type ModelField string

const (
	FieldSystem          ModelField = "system"
	FieldEntities        ModelField = "entities"
	FieldRelationships   ModelField = "relationships"
	FieldActors          ModelField = "actors"
	FieldUseCases        ModelField = "useCases"
	FieldInteractions    ModelField = "interactions"
	FieldStateMachines   ModelField = "stateMachines"
	FieldComponents      ModelField = "components"
	FieldDeploymentNodes ModelField = "deploymentNodes"
	FieldActivities      ModelField = "activities"
)

var modelFields = []ModelField{
	FieldSystem, FieldEntities, FieldRelationships, FieldActors, FieldUseCases,
	FieldInteractions, FieldStateMachines, FieldComponents, FieldDeploymentNodes, FieldActivities,
}

var snakeFieldNames = map[string]ModelField{
	"use_cases":        FieldUseCases,
	"state_machines":   FieldStateMachines,
	"deployment_nodes": FieldDeploymentNodes,
}

func ModelFields() []ModelField {
	return append([]ModelField(nil), modelFields...)
}

// ParseModelField accepts the wire name of a top-level model field, in
// camelCase or snake_case.
func ParseModelField(raw string) (ModelField, error) {
	name := strings.TrimSpace(raw)
	for _, field := range modelFields {
		if string(field) == name {
			return field, nil
		}
	}
	if field, ok := snakeFieldNames[name]; ok {
		return field, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModelField, raw)
}

// ModelPatch overwrites whole top-level fields of a model. Unset slots leave
// the field untouched; there is no deep merge.
type ModelPatch struct {
	System          *SystemInfo
	Entities        *[]Entity
	Relationships   *[]Relationship
	Actors          *[]Actor
	UseCases        *[]UseCase
	Interactions    *[]Interaction
	StateMachines   *[]StateMachine
	Components      *[]Component
	DeploymentNodes *[]DeploymentNode
	Activities      *[]Activity
}

func (p ModelPatch) SetSystem(v SystemInfo) ModelPatch {
	p.System = &v
	return p
}

func (p ModelPatch) SetEntities(v []Entity) ModelPatch {
	p.Entities = &v
	return p
}

func (p ModelPatch) SetRelationships(v []Relationship) ModelPatch {
	p.Relationships = &v
	return p
}

func (p ModelPatch) SetActors(v []Actor) ModelPatch {
	p.Actors = &v
	return p
}

func (p ModelPatch) SetUseCases(v []UseCase) ModelPatch {
	p.UseCases = &v
	return p
}

func (p ModelPatch) SetInteractions(v []Interaction) ModelPatch {
	p.Interactions = &v
	return p
}

func (p ModelPatch) SetStateMachines(v []StateMachine) ModelPatch {
	p.StateMachines = &v
	return p
}

func (p ModelPatch) SetComponents(v []Component) ModelPatch {
	p.Components = &v
	return p
}

func (p ModelPatch) SetDeploymentNodes(v []DeploymentNode) ModelPatch {
	p.DeploymentNodes = &v
	return p
}

func (p ModelPatch) SetActivities(v []Activity) ModelPatch {
	p.Activities = &v
	return p
}

// Fields lists the fields the patch sets, in model order.
func (p ModelPatch) Fields() []ModelField {
	set := map[ModelField]bool{
		FieldSystem:          p.System != nil,
		FieldEntities:        p.Entities != nil,
		FieldRelationships:   p.Relationships != nil,
		FieldActors:          p.Actors != nil,
		FieldUseCases:        p.UseCases != nil,
		FieldInteractions:    p.Interactions != nil,
		FieldStateMachines:   p.StateMachines != nil,
		FieldComponents:      p.Components != nil,
		FieldDeploymentNodes: p.DeploymentNodes != nil,
		FieldActivities:      p.Activities != nil,
	}
	fields := make([]ModelField, 0, len(modelFields))
	for _, field := range modelFields {
		if set[field] {
			fields = append(fields, field)
		}
	}
	return fields
}

func (p ModelPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply returns a copy of m with the patched fields replaced.
func (p ModelPatch) Apply(m SystemModel) SystemModel {
	if p.System != nil {
		m.System = *p.System
	}
	if p.Entities != nil {
		m.Entities = *p.Entities
	}
	if p.Relationships != nil {
		m.Relationships = *p.Relationships
	}
	if p.Actors != nil {
		m.Actors = *p.Actors
	}
	if p.UseCases != nil {
		m.UseCases = *p.UseCases
	}
	if p.Interactions != nil {
		m.Interactions = *p.Interactions
	}
	if p.StateMachines != nil {
		m.StateMachines = *p.StateMachines
	}
	if p.Components != nil {
		m.Components = *p.Components
	}
	if p.DeploymentNodes != nil {
		m.DeploymentNodes = *p.DeploymentNodes
	}
	if p.Activities != nil {
		m.Activities = *p.Activities
	}
	return m
}

// PatchFromJSON builds a patch from a JSON object keyed by field name. Unknown
// keys fail with ErrUnknownModelField.
func PatchFromJSON(data []byte) (ModelPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ModelPatch{}, fmt.Errorf("decode model patch: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var patch ModelPatch
	for _, key := range keys {
		field, err := ParseModelField(key)
		if err != nil {
			return ModelPatch{}, err
		}
		patch, err = patch.withField(field, raw[key])
		if err != nil {
			return ModelPatch{}, err
		}
	}
	return patch, nil
}

// PatchField builds a single-field patch from the field's JSON value.
func PatchField(field ModelField, value []byte) (ModelPatch, error) {
	return ModelPatch{}.withField(field, value)
}

func (p ModelPatch) withField(field ModelField, value []byte) (ModelPatch, error) {
	decode := func(dst any) error {
		normalized, err := normalizeKeys(value)
		if err != nil {
			return fmt.Errorf("decode %s: %w", field, err)
		}
		if err := json.Unmarshal(normalized, dst); err != nil {
			return fmt.Errorf("decode %s: %w", field, err)
		}
		return nil
	}

	switch field {
	case FieldSystem:
		var v SystemInfo
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetSystem(v), nil
	case FieldEntities:
		var v []Entity
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetEntities(v), nil
	case FieldRelationships:
		var v []Relationship
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetRelationships(v), nil
	case FieldActors:
		var v []Actor
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetActors(v), nil
	case FieldUseCases:
		var v []UseCase
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetUseCases(v), nil
	case FieldInteractions:
		var v []Interaction
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetInteractions(v), nil
	case FieldStateMachines:
		var v []StateMachine
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetStateMachines(v), nil
	case FieldComponents:
		var v []Component
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetComponents(v), nil
	case FieldDeploymentNodes:
		var v []DeploymentNode
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetDeploymentNodes(v), nil
	case FieldActivities:
		var v []Activity
		if err := decode(&v); err != nil {
			return p, err
		}
		return p.SetActivities(v), nil
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownModelField, field)
	}
}

// WithDefaults returns a copy of the patch whose entities and interactions
// carry the defaults ParseModel applies. The receiver's slices are not
// modified.
func (p ModelPatch) WithDefaults() ModelPatch {
	if p.Entities != nil {
		entities := make([]Entity, len(*p.Entities))
		for i, e := range *p.Entities {
			e.Attributes = append([]Attribute(nil), e.Attributes...)
			e.Methods = append([]Method(nil), e.Methods...)
			entities[i] = e
		}
		m := SystemModel{Entities: entities}
		m.ApplyDefaults()
		p = p.SetEntities(m.Entities)
	}
	if p.Interactions != nil {
		interactions := make([]Interaction, len(*p.Interactions))
		for i, in := range *p.Interactions {
			in.Messages = append([]Message(nil), in.Messages...)
			interactions[i] = in
		}
		m := SystemModel{Interactions: interactions}
		m.ApplyDefaults()
		p = p.SetInteractions(m.Interactions)
	}
	return p
}
