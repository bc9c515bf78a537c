package views

import (
	"strings"

	"github.com/bnema/umlgen/internal/domain"
)

// RenderContext is what a strategy sees: the model, read-only, plus the
// lookups and line builders shared by the templates.
type RenderContext struct {
	*domain.SystemModel
	View domain.ViewID
}

func (c RenderContext) Title() string {
	return c.System.Name + " - " + viewTitle(c.View) + " View"
}

// SequenceInteractions are the interactions drawn in the sequence view.
func (c RenderContext) SequenceInteractions() []domain.Interaction {
	var out []domain.Interaction
	for _, in := range c.Interactions {
		if in.Kind == domain.InteractionCommunication {
			continue
		}
		out = append(out, in)
	}
	return out
}

// SequenceParticipant is a lifeline declaration. Ids that resolve to nothing
// still get a lifeline with a humanized name.
type SequenceParticipant struct {
	ID          string
	Declaration string
}

// SequenceParticipants lists lifelines in order of first appearance, declared
// participants before message endpoints.
func (c RenderContext) SequenceParticipants() []SequenceParticipant {
	seen := map[string]bool{}
	var out []SequenceParticipant
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, SequenceParticipant{ID: id, Declaration: c.participantDeclaration(id)})
	}

	for _, in := range c.SequenceInteractions() {
		for _, id := range in.Participants {
			add(id)
		}
		for _, msg := range domain.OrderedMessages(in) {
			add(msg.From)
			add(msg.To)
		}
	}
	return out
}

func (c RenderContext) participantDeclaration(id string) string {
	p := c.ParticipantByID(id)
	if p == nil {
		return "participant " + quote(humanize(id)) + " as " + alias(id)
	}
	switch p.Kind {
	case domain.ParticipantActor:
		return "actor " + quote(p.Name()) + " as " + alias(id)
	case domain.ParticipantComponent:
		return "participant " + quote(p.Name()) + " as " + alias(id) + stereotype("component")
	default:
		return "participant " + quote(p.Name()) + " as " + alias(id)
	}
}

// MessageLines renders one message, including the create, destroy and return
// lines that go with it.
func (c RenderContext) MessageLines(msg domain.Message) string {
	from, to := alias(msg.From), alias(msg.To)

	text := label(msg.Text)
	if msg.Guard != "" {
		text = "[" + label(msg.Guard) + "] " + text
	}

	arrow := "->"
	switch msg.Kind {
	case domain.MessageAsync:
		arrow = "->>"
	case domain.MessageReturn:
		arrow = "-->"
	}

	var lines []string
	if msg.Kind == domain.MessageCreate {
		lines = append(lines, "create "+to)
	}
	lines = append(lines, from+" "+arrow+" "+to+" : "+text)
	if msg.Return != "" {
		lines = append(lines, to+" --> "+from+" : "+label(msg.Return))
	}
	if msg.Kind == domain.MessageDestroy {
		lines = append(lines, "destroy "+to)
	}
	return strings.Join(lines, "\n")
}

func (c RenderContext) RelationshipLine(r domain.Relationship) string {
	var b strings.Builder
	b.WriteString(alias(r.Source))
	if r.SourceCardinality != "" {
		b.WriteString(" " + quote(r.SourceCardinality))
	}
	b.WriteString(" " + relationshipArrow(r.Kind) + " ")
	if r.TargetCardinality != "" {
		b.WriteString(quote(r.TargetCardinality) + " ")
	}
	b.WriteString(alias(r.Target))
	if r.Label != "" {
		b.WriteString(" : " + label(r.Label))
	}
	return b.String()
}

// UseCaseAlias keeps use case identifiers apart from actor identifiers.
func (c RenderContext) UseCaseAlias(id string) string {
	return "uc_" + alias(id)
}

// StateMachineTitle falls back to the owning entity's name.
func (c RenderContext) StateMachineTitle(sm domain.StateMachine) string {
	if sm.Name != "" {
		return sm.Name
	}
	if entity := c.EntityByID(sm.Entity); entity != nil {
		return entity.Name
	}
	return humanize(sm.Entity)
}

// StateRef names a state inside its machine; initial and final states are
// the pseudo state [*].
func (c RenderContext) StateRef(sm domain.StateMachine, name string) string {
	for _, st := range sm.States {
		if st.Name == name && pseudoState(st.Kind) {
			return "[*]"
		}
	}
	return alias(sm.ID) + "_" + alias(name)
}

func (c RenderContext) TransitionLine(sm domain.StateMachine, t domain.Transition) string {
	line := c.StateRef(sm, t.From) + " --> " + c.StateRef(sm, t.To)

	var parts []string
	if t.Trigger != "" {
		parts = append(parts, label(t.Trigger))
	}
	if t.Guard != "" {
		parts = append(parts, "["+label(t.Guard)+"]")
	}
	if t.Action != "" {
		parts = append(parts, "/ "+label(t.Action))
	}
	if len(parts) > 0 {
		line += " : " + strings.Join(parts, " ")
	}
	return line
}

// Interfaces lists every provided or required interface once, in order of
// first appearance.
func (c RenderContext) Interfaces() []string {
	seen := map[string]bool{}
	var out []string
	for _, comp := range c.Components {
		for _, name := range append(append([]string{}, comp.ProvidedInterfaces...), comp.RequiredInterfaces...) {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (c RenderContext) InterfaceAlias(name string) string {
	return "if_" + alias(name)
}

// ContainedEntities resolves the entity ids a component contains. Contained
// components are drawn at top level and linked instead.
func (c RenderContext) ContainedEntities(comp domain.Component) []domain.Entity {
	var out []domain.Entity
	for _, id := range comp.Contains {
		if entity := c.EntityByID(id); entity != nil {
			out = append(out, *entity)
		}
	}
	return out
}

func (c RenderContext) ContainedComponents(comp domain.Component) []domain.Component {
	var out []domain.Component
	for _, id := range comp.Contains {
		if c.EntityByID(id) != nil {
			continue
		}
		if child := c.ComponentByID(id); child != nil {
			out = append(out, *child)
		}
	}
	return out
}

// ActivityNodeRef names an activity node in the legacy activity syntax.
func (c RenderContext) ActivityNodeRef(act domain.Activity, id string) string {
	for _, node := range act.Nodes {
		if node.ID != id {
			continue
		}
		switch node.Kind {
		case domain.ActivityInitial, domain.ActivityFinal:
			return "(*)"
		case domain.ActivityFork, domain.ActivityJoin:
			return "===" + alias(act.ID) + "_" + alias(node.ID) + "==="
		default:
			name := node.Name
			if name == "" {
				name = humanize(node.ID)
			}
			if node.Kind == domain.ActivityDecision && !strings.HasSuffix(name, "?") {
				name += "?"
			}
			return quote(name)
		}
	}
	return quote(humanize(id))
}

func (c RenderContext) FlowLine(act domain.Activity, f domain.ActivityFlow) string {
	arrow := "-->"
	switch {
	case f.Guard != "":
		arrow += " [" + label(f.Guard) + "]"
	case f.Label != "":
		arrow += " [" + label(f.Label) + "]"
	}
	return c.ActivityNodeRef(act, f.From) + " " + arrow + " " + c.ActivityNodeRef(act, f.To)
}

// DanglingEntities lists relationship endpoints that are not defined entities.
func (c RenderContext) DanglingEntities() []string {
	var refs []string
	for _, r := range c.Relationships {
		refs = append(refs, r.Source, r.Target)
	}
	return dangling(refs, func(id string) bool { return c.EntityByID(id) != nil })
}

// DanglingActors lists actor ids referenced by use cases but never defined.
func (c RenderContext) DanglingActors() []string {
	var refs []string
	for _, uc := range c.UseCases {
		refs = append(refs, uc.Actors...)
	}
	return dangling(refs, func(id string) bool { return c.ActorByID(id) != nil })
}

func (c RenderContext) DanglingNodes() []string {
	var refs []string
	for _, node := range c.DeploymentNodes {
		refs = append(refs, node.NestedNodes...)
	}
	return dangling(refs, func(id string) bool { return c.DeploymentNodeByID(id) != nil })
}

func (c RenderContext) ActorStereotype(a domain.Actor) string {
	if a.Kind == domain.ActorKindSystem {
		return stereotype("system")
	}
	return ""
}

// Container reports whether a component is drawn with a body.
func (c RenderContext) Container(comp domain.Component) bool {
	return comp.Kind != domain.ComponentKindComponent || len(c.ContainedEntities(comp)) > 0
}

func (c RenderContext) ActivityTitle(act domain.Activity) string {
	if act.Name != "" {
		return act.Name
	}
	return humanize(act.ID)
}

func dangling(refs []string, defined func(string) bool) []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range refs {
		if id == "" || seen[id] || defined(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
