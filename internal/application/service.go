package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
	"github.com/bnema/umlgen/internal/views"
)

// Service owns the session's canonical model and every view rendered from
// it. Only Generate reaches the generation step; switching views reads the
// stored model and renders it again.
type Service struct {
	models    ports.ModelStore
	generator ports.ModelGenerator
	artifacts ports.ArtifactWriter
	renderer  *views.Renderer
	clock     ports.Clock
	logger    *slog.Logger

	strictReferences bool
}

type Option func(*Service)

func WithArtifactWriter(artifacts ports.ArtifactWriter) Option {
	return func(s *Service) {
		s.artifacts = artifacts
	}
}

func WithRenderer(renderer *views.Renderer) Option {
	return func(s *Service) {
		s.renderer = renderer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithStrictReferences makes dangling ids a validation failure instead of a
// warning.
func WithStrictReferences(strict bool) Option {
	return func(s *Service) {
		s.strictReferences = strict
	}
}

func NewService(models ports.ModelStore, generator ports.ModelGenerator, clock ports.Clock, opts ...Option) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &Service{
		models:    models,
		generator: generator,
		clock:     clock,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = views.NewRenderer(nil, nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s
}

func (s *Service) SupportedViews() []domain.ViewID {
	return s.renderer.Registry().Supported()
}

func (s *Service) Supports(view domain.ViewID) bool {
	return s.renderer.Registry().Supports(view)
}

// Render renders a model that is not tied to a session.
func (s *Service) Render(model domain.SystemModel, view domain.ViewID) (string, error) {
	return s.renderer.Render(model, view)
}

// Generate calls the generation step once, stores the resulting model for the
// session and renders every requested view from it. Requested views are
// checked before anything is generated.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	if strings.TrimSpace(cmd.Prompt) == "" {
		return GenerateResult{}, fmt.Errorf("%w: prompt is required", domain.ErrValidation)
	}
	if err := s.checkViews(cmd.Views); err != nil {
		return GenerateResult{}, err
	}

	return s.generate(ctx, cmd.Session, cmd.Prompt, cmd.Views, cmd.Persist)
}

// Edit refines the session's stored model. The generation step receives the
// current model as JSON along with the instruction and its answer replaces
// the stored model.
func (s *Service) Edit(ctx context.Context, cmd EditCommand) (GenerateResult, error) {
	if strings.TrimSpace(cmd.Instruction) == "" {
		return GenerateResult{}, fmt.Errorf("%w: edit instruction is required", domain.ErrValidation)
	}
	if err := s.checkViews(cmd.Views); err != nil {
		return GenerateResult{}, err
	}

	current, found, err := s.models.Get(ctx, cmd.Session)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("get model: %w", err)
	}
	if !found {
		return GenerateResult{}, fmt.Errorf("%w for session %q: %w", domain.ErrModelNotFound, cmd.Session, ErrNothingToEdit)
	}

	prompt, err := editPrompt(current, cmd.Instruction)
	if err != nil {
		return GenerateResult{}, err
	}

	return s.generate(ctx, cmd.Session, prompt, cmd.Views, cmd.Persist)
}

func (s *Service) checkViews(views []domain.ViewID) error {
	for _, view := range views {
		if !s.Supports(view) {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedView, view)
		}
	}
	return nil
}

func (s *Service) generate(ctx context.Context, session domain.SessionID, prompt string, views []domain.ViewID, persist bool) (GenerateResult, error) {
	model, usage, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	issues, err := s.checkReferences(model)
	if err != nil {
		return GenerateResult{}, err
	}

	if err := s.models.Save(ctx, session, model); err != nil {
		return GenerateResult{}, fmt.Errorf("save model: %w", err)
	}
	s.logger.Info("model stored", "session", session, "tokens", usage.Total())

	rendered := make([]domain.DiagramView, len(views))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, view := range views {
		group.Go(func() error {
			diagram, err := s.renderDiagram(groupCtx, session, model, view, i, persist)
			if err != nil {
				return err
			}
			rendered[i] = diagram
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return GenerateResult{}, err
	}
	// The one generation call is charged to the first view only.
	if len(rendered) > 0 {
		rendered[0].GenerationCost = usage
	}

	return GenerateResult{
		Model:           model,
		Views:           rendered,
		Usage:           usage,
		ReferenceIssues: issues,
	}, nil
}

func editPrompt(current domain.SystemModel, instruction string) (string, error) {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode current model: %w", err)
	}

	var b strings.Builder
	b.WriteString("Refine the existing canonical model below. Keep every element the edit does not touch and return the complete updated model.\n\n")
	b.WriteString("Current model:\n")
	b.Write(data)
	b.WriteString("\n\nEdit:\n")
	b.WriteString(strings.TrimSpace(instruction))
	return b.String(), nil
}

// RenderView switches the session to another view of its stored model. It
// reports found=false when no model is stored. The generation cost of the
// returned view is always zero.
func (s *Service) RenderView(ctx context.Context, cmd RenderViewCommand) (domain.DiagramView, bool, error) {
	model, found, err := s.models.Get(ctx, cmd.Session)
	if err != nil {
		return domain.DiagramView{}, false, fmt.Errorf("get model: %w", err)
	}
	if !found {
		return domain.DiagramView{}, false, nil
	}

	diagram, err := s.renderDiagram(ctx, cmd.Session, model, cmd.View, 0, cmd.Persist)
	if err != nil {
		return domain.DiagramView{}, true, err
	}

	return diagram, true, nil
}

func (s *Service) renderDiagram(ctx context.Context, session domain.SessionID, model domain.SystemModel, view domain.ViewID, index int, persist bool) (domain.DiagramView, error) {
	markup, err := s.renderer.Render(model, view)
	if err != nil {
		return domain.DiagramView{}, err
	}
	s.logger.Debug("view rendered", "session", session, "view", view)

	diagram := domain.DiagramView{
		View:       view,
		Markup:     markup,
		RenderedAt: s.clock.Now(),
	}

	if persist && s.artifacts != nil {
		path, err := s.artifacts.Write(ctx, ports.ArtifactRequest{
			Session: session,
			View:    view,
			Index:   index,
			Markup:  markup,
		})
		if err != nil {
			s.logger.Warn("could not write diagram artifact", "session", session, "view", view, "error", err)
		} else {
			diagram.ArtifactPath = path
		}
	}

	return diagram, nil
}

func (s *Service) Model(ctx context.Context, session domain.SessionID) (ModelSummary, bool, error) {
	model, found, err := s.models.Get(ctx, session)
	if err != nil {
		return ModelSummary{}, false, fmt.Errorf("get model: %w", err)
	}
	if !found {
		return ModelSummary{}, false, nil
	}

	return ModelSummary{
		Session:         session,
		Model:           model,
		Counts:          model.Counts(),
		AvailableViews:  s.SupportedViews(),
		ReferenceIssues: model.CheckReferences(),
	}, true, nil
}

func (s *Service) ModelExists(ctx context.Context, session domain.SessionID) (bool, error) {
	exists, err := s.models.Exists(ctx, session)
	if err != nil {
		return false, fmt.Errorf("check model: %w", err)
	}
	return exists, nil
}

func (s *Service) DeleteModel(ctx context.Context, session domain.SessionID) error {
	if err := s.models.Delete(ctx, session); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// ImportModel stores a model that was authored outside the generation step.
func (s *Service) ImportModel(ctx context.Context, session domain.SessionID, model domain.SystemModel) ([]domain.ReferenceIssue, error) {
	model.ApplyDefaults()
	if err := model.Validate(); err != nil {
		return nil, err
	}

	issues, err := s.checkReferences(model)
	if err != nil {
		return nil, err
	}

	if err := s.models.Save(ctx, session, model); err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}

	return issues, nil
}

// UpdateModel replaces the patched top-level fields of the stored model. It
// reports false when the session has no model.
func (s *Service) UpdateModel(ctx context.Context, session domain.SessionID, patch domain.ModelPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, fmt.Errorf("%w: patch sets no fields", domain.ErrValidation)
	}

	current, found, err := s.models.Get(ctx, session)
	if err != nil {
		return false, fmt.Errorf("get model: %w", err)
	}
	if !found {
		return false, nil
	}

	patch = patch.WithDefaults()
	next := patch.Apply(current)
	if err := next.Validate(); err != nil {
		return false, err
	}
	if _, err := s.checkReferences(next); err != nil {
		return false, err
	}

	applied, err := s.models.Update(ctx, session, patch)
	if err != nil {
		return false, fmt.Errorf("update model: %w", err)
	}

	return applied, nil
}

func (s *Service) checkReferences(model domain.SystemModel) ([]domain.ReferenceIssue, error) {
	issues := model.CheckReferences()
	if len(issues) == 0 {
		return nil, nil
	}

	problems := make([]string, 0, len(issues))
	for _, issue := range issues {
		problems = append(problems, issue.String())
	}

	if s.strictReferences {
		return nil, &domain.ValidationError{Problems: problems, Err: domain.ErrReferentialIntegrity}
	}

	s.logger.Warn("model has unresolved references", "count", len(issues), "issues", strings.Join(problems, "; "))
	return issues, nil
}

var errNoModel = errors.New("call generate first")

// ErrNothingToEdit reports an edit before any diagram exists for the session.
var ErrNothingToEdit = errors.New("no previous diagram to edit, generate a diagram first")

// NoModelError explains an absent session model to a caller.
func NoModelError(session domain.SessionID) error {
	return fmt.Errorf("%w for session %q: %w", domain.ErrModelNotFound, session, errNoModel)
}
