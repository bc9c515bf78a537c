package domain

import (
	"fmt"
	"strings"
	"time"
)

type ViewID string

const (
	ViewClass               ViewID = "class"
	ViewObject              ViewID = "object"
	ViewComponent           ViewID = "component"
	ViewCompositeStructure  ViewID = "composite_structure"
	ViewDeployment          ViewID = "deployment"
	ViewPackage             ViewID = "package"
	ViewProfile             ViewID = "profile"
	ViewUseCase             ViewID = "use_case"
	ViewActivity            ViewID = "activity"
	ViewStateMachine        ViewID = "state_machine"
	ViewSequence            ViewID = "sequence"
	ViewCommunication       ViewID = "communication"
	ViewInteractionOverview ViewID = "interaction_overview"
	ViewTiming              ViewID = "timing"
)

type ViewCategory string

const (
	CategoryStructure   ViewCategory = "structure"
	CategoryBehavior    ViewCategory = "behavior"
	CategoryInteraction ViewCategory = "interaction"
)

var taxonomy = []struct {
	id       ViewID
	category ViewCategory
}{
	{ViewClass, CategoryStructure},
	{ViewObject, CategoryStructure},
	{ViewComponent, CategoryStructure},
	{ViewCompositeStructure, CategoryStructure},
	{ViewDeployment, CategoryStructure},
	{ViewPackage, CategoryStructure},
	{ViewProfile, CategoryStructure},
	{ViewUseCase, CategoryBehavior},
	{ViewActivity, CategoryBehavior},
	{ViewStateMachine, CategoryBehavior},
	{ViewSequence, CategoryInteraction},
	{ViewCommunication, CategoryInteraction},
	{ViewInteractionOverview, CategoryInteraction},
	{ViewTiming, CategoryInteraction},
}

// AllViews lists the full UML taxonomy, structure diagrams first.
func AllViews() []ViewID {
	views := make([]ViewID, 0, len(taxonomy))
	for _, entry := range taxonomy {
		views = append(views, entry.id)
	}
	return views
}

func (v ViewID) Valid() bool {
	_, ok := v.category()
	return ok
}

func (v ViewID) Category() ViewCategory {
	category, _ := v.category()
	return category
}

func (v ViewID) category() (ViewCategory, bool) {
	for _, entry := range taxonomy {
		if entry.id == v {
			return entry.category, true
		}
	}
	return "", false
}

// ParseViewID accepts "state_machine", "state-machine" and "State Machine"
// spellings. Identifiers outside the taxonomy fail with ErrInvalidView.
func ParseViewID(raw string) (ViewID, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	view := ViewID(normalized)
	if !view.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidView, raw)
	}
	return view, nil
}

// DiagramView is one rendered view of a stored model. GenerationCost stays
// zero when no generation step ran to produce it.
type DiagramView struct {
	View           ViewID     `json:"view"`
	Markup         string     `json:"markup"`
	ArtifactPath   string     `json:"artifactPath,omitempty"`
	GenerationCost TokenUsage `json:"generationCost"`
	RenderedAt     time.Time  `json:"renderedAt"`
}
