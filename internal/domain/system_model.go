package domain

type SessionID string

type EntityKind string

const (
	EntityKindClass     EntityKind = "class"
	EntityKindInterface EntityKind = "interface"
	EntityKindAbstract  EntityKind = "abstract"
	EntityKindEnum      EntityKind = "enum"
)

type RelationshipKind string

const (
	RelationshipAssociation RelationshipKind = "association"
	RelationshipAggregation RelationshipKind = "aggregation"
	RelationshipComposition RelationshipKind = "composition"
	RelationshipInheritance RelationshipKind = "inheritance"
	RelationshipRealization RelationshipKind = "realization"
	RelationshipDependency  RelationshipKind = "dependency"
)

type ActorKind string

const (
	ActorKindHuman  ActorKind = "human"
	ActorKindSystem ActorKind = "system"
)

type InteractionKind string

const (
	InteractionSequence      InteractionKind = "sequence"
	InteractionCommunication InteractionKind = "communication"
)

type MessageKind string

const (
	MessageSync    MessageKind = "sync"
	MessageAsync   MessageKind = "async"
	MessageReturn  MessageKind = "return"
	MessageCreate  MessageKind = "create"
	MessageDestroy MessageKind = "destroy"
)

type StateKind string

const (
	StateInitial   StateKind = "initial"
	StateFinal     StateKind = "final"
	StateSimple    StateKind = "simple"
	StateComposite StateKind = "composite"
)

type ComponentKind string

const (
	ComponentKindComponent ComponentKind = "component"
	ComponentKindPackage   ComponentKind = "package"
	ComponentKindSubsystem ComponentKind = "subsystem"
)

type DeploymentNodeKind string

const (
	DeploymentKindDevice               DeploymentNodeKind = "device"
	DeploymentKindExecutionEnvironment DeploymentNodeKind = "executionEnvironment"
	DeploymentKindNode                 DeploymentNodeKind = "node"
	DeploymentKindSystem               DeploymentNodeKind = "system"
)

type ActivityNodeKind string

const (
	ActivityAction   ActivityNodeKind = "action"
	ActivityDecision ActivityNodeKind = "decision"
	ActivityMerge    ActivityNodeKind = "merge"
	ActivityFork     ActivityNodeKind = "fork"
	ActivityJoin     ActivityNodeKind = "join"
	ActivityInitial  ActivityNodeKind = "initial"
	ActivityFinal    ActivityNodeKind = "final"
)

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
)

// SystemModel is the canonical description of a system. Every diagram view is
// derived from it; it is never mutated while a view is rendered.
type SystemModel struct {
	System          SystemInfo       `json:"system"`
	Entities        []Entity         `json:"entities"`
	Relationships   []Relationship   `json:"relationships"`
	Actors          []Actor          `json:"actors"`
	UseCases        []UseCase        `json:"useCases"`
	Interactions    []Interaction    `json:"interactions"`
	StateMachines   []StateMachine   `json:"stateMachines"`
	Components      []Component      `json:"components"`
	DeploymentNodes []DeploymentNode `json:"deploymentNodes"`
	Activities      []Activity       `json:"activities"`
}

type SystemInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty" msgpack:"metadata"`
}

type Entity struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Kind        EntityKind  `json:"type"`
	Stereotype  string      `json:"stereotype,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Methods     []Method    `json:"methods,omitempty"`
	Description string      `json:"description,omitempty"`
}

type Attribute struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Visibility Visibility `json:"visibility,omitempty"`
	Default    any        `json:"default,omitempty" msgpack:"default"`
	IsStatic   bool       `json:"isStatic,omitempty"`
}

type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Method struct {
	Name       string      `json:"name"`
	ReturnType string      `json:"returnType"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Visibility Visibility  `json:"visibility,omitempty"`
	IsStatic   bool        `json:"isStatic,omitempty"`
	IsAbstract bool        `json:"isAbstract,omitempty"`
}

type Relationship struct {
	ID                string           `json:"id"`
	Kind              RelationshipKind `json:"type"`
	Source            string           `json:"source"`
	Target            string           `json:"target"`
	SourceCardinality string           `json:"sourceCardinality,omitempty"`
	TargetCardinality string           `json:"targetCardinality,omitempty"`
	Label             string           `json:"label,omitempty"`
}

type Actor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        ActorKind `json:"type"`
	Description string    `json:"description,omitempty"`
}

type UseCase struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Actors           []string          `json:"actors,omitempty"`
	Description      string            `json:"description,omitempty"`
	Preconditions    []string          `json:"preconditions,omitempty"`
	Postconditions   []string          `json:"postconditions,omitempty"`
	MainFlow         []string          `json:"mainFlow,omitempty"`
	AlternativeFlows []AlternativeFlow `json:"alternativeFlows,omitempty"`
	Extends          []string          `json:"extends,omitempty"`
	Includes         []string          `json:"includes,omitempty"`
}

type AlternativeFlow struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps,omitempty"`
}

type Interaction struct {
	ID           string          `json:"id"`
	Kind         InteractionKind `json:"type"`
	Name         string          `json:"name,omitempty"`
	Participants []string        `json:"participants,omitempty"`
	Messages     []Message       `json:"messages,omitempty"`
}

type Message struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Text   string      `json:"message"`
	Order  int         `json:"order"`
	Kind   MessageKind `json:"messageType,omitempty"`
	Guard  string      `json:"condition,omitempty"`
	Return string      `json:"returnMessage,omitempty"`
}

type StateMachine struct {
	ID          string       `json:"id"`
	Entity      string       `json:"entity"`
	Name        string       `json:"name,omitempty"`
	States      []State      `json:"states,omitempty"`
	Transitions []Transition `json:"transitions,omitempty"`
}

type State struct {
	Name       string    `json:"name"`
	Kind       StateKind `json:"type"`
	Entry      string    `json:"entry,omitempty"`
	Exit       string    `json:"exit,omitempty"`
	DoActivity string    `json:"doActivity,omitempty"`
}

type Transition struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Trigger string `json:"trigger"`
	Guard   string `json:"guard,omitempty"`
	Action  string `json:"action,omitempty"`
}

type Component struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Kind               ComponentKind `json:"type"`
	ProvidedInterfaces []string      `json:"providedInterfaces,omitempty"`
	RequiredInterfaces []string      `json:"requiredInterfaces,omitempty"`
	Contains           []string      `json:"contains,omitempty"`
	Stereotype         string        `json:"stereotype,omitempty"`
}

type DeploymentNode struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Kind        DeploymentNodeKind `json:"type"`
	Artifacts   []string           `json:"artifacts,omitempty"`
	NestedNodes []string           `json:"nestedNodes,omitempty"`
	Stereotype  string             `json:"stereotype,omitempty"`
}

type Activity struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Nodes []ActivityNode `json:"nodes,omitempty"`
	Flows []ActivityFlow `json:"flows,omitempty"`
}

type ActivityNode struct {
	ID       string           `json:"id"`
	Kind     ActivityNodeKind `json:"type"`
	Name     string           `json:"name"`
	Guard    string           `json:"condition,omitempty"`
	Swimlane string           `json:"swimlane,omitempty"`
}

type ActivityFlow struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Guard string `json:"guard,omitempty"`
	Label string `json:"label,omitempty"`
}

// Counts reports the size of each collection, keyed by its wire name.
func (m SystemModel) Counts() map[string]int {
	return map[string]int{
		"entities":        len(m.Entities),
		"relationships":   len(m.Relationships),
		"actors":          len(m.Actors),
		"useCases":        len(m.UseCases),
		"interactions":    len(m.Interactions),
		"stateMachines":   len(m.StateMachines),
		"components":      len(m.Components),
		"deploymentNodes": len(m.DeploymentNodes),
		"activities":      len(m.Activities),
	}
}
