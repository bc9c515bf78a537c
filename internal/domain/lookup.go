package domain

import "sort"

type ParticipantKind string

const (
	ParticipantActor     ParticipantKind = "actor"
	ParticipantEntity    ParticipantKind = "entity"
	ParticipantComponent ParticipantKind = "component"
)

// Participant is one of Actor, Entity or Component; exactly one pointer is set
// and Kind names which.
type Participant struct {
	Kind      ParticipantKind
	Actor     *Actor
	Entity    *Entity
	Component *Component
}

func (p Participant) ID() string {
	switch p.Kind {
	case ParticipantActor:
		return p.Actor.ID
	case ParticipantEntity:
		return p.Entity.ID
	case ParticipantComponent:
		return p.Component.ID
	default:
		return ""
	}
}

func (p Participant) Name() string {
	switch p.Kind {
	case ParticipantActor:
		return p.Actor.Name
	case ParticipantEntity:
		return p.Entity.Name
	case ParticipantComponent:
		return p.Component.Name
	default:
		return ""
	}
}

// EntityByID returns a copy of the first entity with the id, or nil.
func (m *SystemModel) EntityByID(id string) *Entity {
	for i := range m.Entities {
		if m.Entities[i].ID == id {
			entity := m.Entities[i]
			return &entity
		}
	}
	return nil
}

func (m *SystemModel) ActorByID(id string) *Actor {
	for i := range m.Actors {
		if m.Actors[i].ID == id {
			actor := m.Actors[i]
			return &actor
		}
	}
	return nil
}

func (m *SystemModel) ComponentByID(id string) *Component {
	for i := range m.Components {
		if m.Components[i].ID == id {
			component := m.Components[i]
			return &component
		}
	}
	return nil
}

func (m *SystemModel) DeploymentNodeByID(id string) *DeploymentNode {
	for i := range m.DeploymentNodes {
		if m.DeploymentNodes[i].ID == id {
			node := m.DeploymentNodes[i]
			return &node
		}
	}
	return nil
}

func (m *SystemModel) UseCaseByID(id string) *UseCase {
	for i := range m.UseCases {
		if m.UseCases[i].ID == id {
			useCase := m.UseCases[i]
			return &useCase
		}
	}
	return nil
}

// ParticipantByID resolves an id shared by actors, entities and components.
// Actors win over entities, entities over components.
func (m *SystemModel) ParticipantByID(id string) *Participant {
	if actor := m.ActorByID(id); actor != nil {
		return &Participant{Kind: ParticipantActor, Actor: actor}
	}
	if entity := m.EntityByID(id); entity != nil {
		return &Participant{Kind: ParticipantEntity, Entity: entity}
	}
	if component := m.ComponentByID(id); component != nil {
		return &Participant{Kind: ParticipantComponent, Component: component}
	}
	return nil
}

// RelationshipsFor returns the relationships whose source or target is entityID,
// in model order.
func (m *SystemModel) RelationshipsFor(entityID string) []Relationship {
	var result []Relationship
	for _, rel := range m.Relationships {
		if rel.Source == entityID || rel.Target == entityID {
			result = append(result, rel)
		}
	}
	return result
}

// OrderedMessages returns the interaction's messages sorted by Order. Messages
// sharing an order keep their original relative position.
func OrderedMessages(interaction Interaction) []Message {
	messages := make([]Message, len(interaction.Messages))
	copy(messages, interaction.Messages)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Order < messages[j].Order
	})
	return messages
}
