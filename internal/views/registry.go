package views

import "github.com/bnema/umlgen/internal/domain"

// Strategy binds a view to the template that renders it.
type Strategy struct {
	View     domain.ViewID
	Template string
}

// Registry is the ordered table of views that have a rendering strategy.
// Views of the taxonomy that are not registered are rejected by the renderer.
type Registry struct {
	strategies []Strategy
}

var defaultStrategies = []Strategy{
	{View: domain.ViewSequence, Template: "sequence.puml.tmpl"},
	{View: domain.ViewClass, Template: "class.puml.tmpl"},
	{View: domain.ViewComponent, Template: "component.puml.tmpl"},
	{View: domain.ViewUseCase, Template: "use_case.puml.tmpl"},
	{View: domain.ViewStateMachine, Template: "state_machine.puml.tmpl"},
	{View: domain.ViewActivity, Template: "activity.puml.tmpl"},
	{View: domain.ViewDeployment, Template: "deployment.puml.tmpl"},
}

func DefaultRegistry() *Registry {
	return NewRegistry(defaultStrategies...)
}

// NewRegistry keeps the first strategy given for a view.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{}
	for _, strategy := range strategies {
		if r.Supports(strategy.View) {
			continue
		}
		r.strategies = append(r.strategies, strategy)
	}
	return r
}

func (r *Registry) Supports(view domain.ViewID) bool {
	_, ok := r.Strategy(view)
	return ok
}

// Supported lists registered views in registration order.
func (r *Registry) Supported() []domain.ViewID {
	views := make([]domain.ViewID, 0, len(r.strategies))
	for _, strategy := range r.strategies {
		views = append(views, strategy.View)
	}
	return views
}

func (r *Registry) Strategy(view domain.ViewID) (Strategy, bool) {
	for _, strategy := range r.strategies {
		if strategy.View == view {
			return strategy, true
		}
	}
	return Strategy{}, false
}
