package domain

import (
	"fmt"
	"strings"
)

// Validate checks the schema-level shape of the model: required fields,
// known enum values and positive message orders. Dangling references are not
// schema errors; see CheckReferences.
func (m SystemModel) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(m.System.Name) == "" {
		add("system.name is required")
	}

	for i, e := range m.Entities {
		if e.ID == "" {
			add("entities[%d].id is required", i)
		}
		if !validEntityKind(e.Kind) {
			add("entities[%d].type %q is not one of class, interface, abstract, enum", i, e.Kind)
		}
		for j, attr := range e.Attributes {
			if attr.Visibility != "" && !validVisibility(attr.Visibility) {
				add("entities[%d].attributes[%d].visibility %q is invalid", i, j, attr.Visibility)
			}
		}
		for j, method := range e.Methods {
			if method.Visibility != "" && !validVisibility(method.Visibility) {
				add("entities[%d].methods[%d].visibility %q is invalid", i, j, method.Visibility)
			}
		}
	}
	for i, r := range m.Relationships {
		if r.ID == "" {
			add("relationships[%d].id is required", i)
		}
		if !validRelationshipKind(r.Kind) {
			add("relationships[%d].type %q is invalid", i, r.Kind)
		}
		if r.Source == "" || r.Target == "" {
			add("relationships[%d] needs source and target", i)
		}
	}
	for i, a := range m.Actors {
		if a.ID == "" {
			add("actors[%d].id is required", i)
		}
		if a.Kind != ActorKindHuman && a.Kind != ActorKindSystem {
			add("actors[%d].type %q is not one of human, system", i, a.Kind)
		}
	}
	for i, uc := range m.UseCases {
		if uc.ID == "" {
			add("useCases[%d].id is required", i)
		}
	}
	for i, in := range m.Interactions {
		if in.ID == "" {
			add("interactions[%d].id is required", i)
		}
		if in.Kind != "" && in.Kind != InteractionSequence && in.Kind != InteractionCommunication {
			add("interactions[%d].type %q is not one of sequence, communication", i, in.Kind)
		}
		for j, msg := range in.Messages {
			if msg.Order <= 0 {
				add("interactions[%d].messages[%d].order must be positive, got %d", i, j, msg.Order)
			}
			if msg.Kind != "" && !validMessageKind(msg.Kind) {
				add("interactions[%d].messages[%d].messageType %q is invalid", i, j, msg.Kind)
			}
		}
	}
	for i, sm := range m.StateMachines {
		if sm.ID == "" {
			add("stateMachines[%d].id is required", i)
		}
		for j, st := range sm.States {
			if !validStateKind(st.Kind) {
				add("stateMachines[%d].states[%d].type %q is invalid", i, j, st.Kind)
			}
		}
	}
	for i, c := range m.Components {
		if c.ID == "" {
			add("components[%d].id is required", i)
		}
		if c.Kind != ComponentKindComponent && c.Kind != ComponentKindPackage && c.Kind != ComponentKindSubsystem {
			add("components[%d].type %q is not one of component, package, subsystem", i, c.Kind)
		}
	}
	for i, n := range m.DeploymentNodes {
		if n.ID == "" {
			add("deploymentNodes[%d].id is required", i)
		}
		if !validDeploymentKind(n.Kind) {
			add("deploymentNodes[%d].type %q is invalid", i, n.Kind)
		}
	}
	for i, act := range m.Activities {
		if act.ID == "" {
			add("activities[%d].id is required", i)
		}
		for j, node := range act.Nodes {
			if node.ID == "" {
				add("activities[%d].nodes[%d].id is required", i, j)
			}
			if !validActivityNodeKind(node.Kind) {
				add("activities[%d].nodes[%d].type %q is invalid", i, j, node.Kind)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

type ReferenceIssue struct {
	Collection string
	ID         string
	Detail     string
}

func (i ReferenceIssue) String() string {
	return fmt.Sprintf("%s %q: %s", i.Collection, i.ID, i.Detail)
}

// CheckReferences reports duplicate ids and foreign ids that do not resolve.
// The model stays renderable either way; lookups of a dangling id return nil.
func (m *SystemModel) CheckReferences() []ReferenceIssue {
	var issues []ReferenceIssue
	dup := func(collection string, ids []string) {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				issues = append(issues, ReferenceIssue{Collection: collection, ID: id, Detail: "duplicate id"})
				continue
			}
			seen[id] = struct{}{}
		}
	}

	dup("entities", collectIDs(m.Entities, func(e Entity) string { return e.ID }))
	dup("relationships", collectIDs(m.Relationships, func(r Relationship) string { return r.ID }))
	dup("actors", collectIDs(m.Actors, func(a Actor) string { return a.ID }))
	dup("useCases", collectIDs(m.UseCases, func(u UseCase) string { return u.ID }))
	dup("interactions", collectIDs(m.Interactions, func(i Interaction) string { return i.ID }))
	dup("stateMachines", collectIDs(m.StateMachines, func(s StateMachine) string { return s.ID }))
	dup("components", collectIDs(m.Components, func(c Component) string { return c.ID }))
	dup("deploymentNodes", collectIDs(m.DeploymentNodes, func(n DeploymentNode) string { return n.ID }))
	dup("activities", collectIDs(m.Activities, func(a Activity) string { return a.ID }))

	dangling := func(collection, owner, detail string) {
		issues = append(issues, ReferenceIssue{Collection: collection, ID: owner, Detail: detail})
	}

	for _, r := range m.Relationships {
		if m.EntityByID(r.Source) == nil {
			dangling("relationships", r.ID, fmt.Sprintf("source %q is not an entity", r.Source))
		}
		if m.EntityByID(r.Target) == nil {
			dangling("relationships", r.ID, fmt.Sprintf("target %q is not an entity", r.Target))
		}
	}
	for _, uc := range m.UseCases {
		for _, actorID := range uc.Actors {
			if m.ActorByID(actorID) == nil {
				dangling("useCases", uc.ID, fmt.Sprintf("actor %q is not defined", actorID))
			}
		}
		for _, ref := range append(append([]string{}, uc.Extends...), uc.Includes...) {
			if m.UseCaseByID(ref) == nil {
				dangling("useCases", uc.ID, fmt.Sprintf("use case %q is not defined", ref))
			}
		}
	}
	for _, in := range m.Interactions {
		for _, p := range in.Participants {
			if m.ParticipantByID(p) == nil {
				dangling("interactions", in.ID, fmt.Sprintf("participant %q is not defined", p))
			}
		}
		for _, msg := range in.Messages {
			for _, end := range []string{msg.From, msg.To} {
				if m.ParticipantByID(end) == nil {
					dangling("interactions", in.ID, fmt.Sprintf("message endpoint %q is not defined", end))
				}
			}
		}
	}
	for _, sm := range m.StateMachines {
		if m.EntityByID(sm.Entity) == nil {
			dangling("stateMachines", sm.ID, fmt.Sprintf("owning entity %q is not defined", sm.Entity))
		}
	}
	for _, c := range m.Components {
		for _, ref := range c.Contains {
			if m.EntityByID(ref) == nil && m.ComponentByID(ref) == nil {
				dangling("components", c.ID, fmt.Sprintf("contained id %q is neither an entity nor a component", ref))
			}
		}
	}
	for _, n := range m.DeploymentNodes {
		for _, ref := range n.NestedNodes {
			if m.DeploymentNodeByID(ref) == nil {
				dangling("deploymentNodes", n.ID, fmt.Sprintf("nested node %q is not defined", ref))
			}
		}
	}

	return issues
}

func collectIDs[T any](items []T, id func(T) string) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, id(item))
	}
	return ids
}

func validEntityKind(k EntityKind) bool {
	switch k {
	case EntityKindClass, EntityKindInterface, EntityKindAbstract, EntityKindEnum:
		return true
	}
	return false
}

func validRelationshipKind(k RelationshipKind) bool {
	switch k {
	case RelationshipAssociation, RelationshipAggregation, RelationshipComposition,
		RelationshipInheritance, RelationshipRealization, RelationshipDependency:
		return true
	}
	return false
}

func validMessageKind(k MessageKind) bool {
	switch k {
	case MessageSync, MessageAsync, MessageReturn, MessageCreate, MessageDestroy:
		return true
	}
	return false
}

func validStateKind(k StateKind) bool {
	switch k {
	case StateInitial, StateFinal, StateSimple, StateComposite:
		return true
	}
	return false
}

func validDeploymentKind(k DeploymentNodeKind) bool {
	switch k {
	case DeploymentKindDevice, DeploymentKindExecutionEnvironment, DeploymentKindNode, DeploymentKindSystem:
		return true
	}
	return false
}

func validActivityNodeKind(k ActivityNodeKind) bool {
	switch k {
	case ActivityAction, ActivityDecision, ActivityMerge, ActivityFork, ActivityJoin, ActivityInitial, ActivityFinal:
		return true
	}
	return false
}

func validVisibility(v Visibility) bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityProtected, VisibilityPackage:
		return true
	}
	return false
}
