package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"

	"github.com/bnema/umlgen/internal/domain"
)

//go:embed templates/*.puml.tmpl
var embeddedTemplates embed.FS

// Templates returns the built-in strategy templates, rooted at the template
// directory.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer turns a stored model into the markup of one registered view. It
// never mutates the model and output depends on nothing but its inputs.
type Renderer struct {
	registry  *Registry
	templates fs.FS

	mu     sync.Mutex
	parsed map[string]*template.Template
}

// NewRenderer falls back to the default registry and the embedded templates
// when registry or templates is nil.
func NewRenderer(registry *Registry, templates fs.FS) *Renderer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if templates == nil {
		templates = Templates()
	}
	return &Renderer{
		registry:  registry,
		templates: templates,
		parsed:    make(map[string]*template.Template),
	}
}

func (r *Renderer) Registry() *Registry {
	return r.registry
}

func (r *Renderer) Render(model domain.SystemModel, view domain.ViewID) (string, error) {
	strategy, ok := r.registry.Strategy(view)
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnsupportedView, view, joinViews(r.registry.Supported()))
	}

	tmpl, err := r.template(strategy)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, RenderContext{SystemModel: &model, View: view}); err != nil {
		return "", fmt.Errorf("render %s view: %w", view, err)
	}

	return NormalizeBlankLines(buf.String()), nil
}

func (r *Renderer) template(strategy Strategy) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[strategy.Template]; ok {
		return tmpl, nil
	}

	source, err := fs.ReadFile(r.templates, strategy.Template)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s for %s view", domain.ErrTemplateMissing, strategy.Template, strategy.View)
		}
		return nil, fmt.Errorf("read template %s: %w", strategy.Template, err)
	}

	tmpl, err := template.New(strategy.Template).Funcs(templateFuncs()).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", strategy.Template, err)
	}
	r.parsed[strategy.Template] = tmpl

	return tmpl, nil
}

func joinViews(views []domain.ViewID) string {
	names := make([]string, 0, len(views))
	for _, view := range views {
		names = append(names, string(view))
	}
	return strings.Join(names, ", ")
}
