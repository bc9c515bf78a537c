package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bnema/umlgen/internal/adapters/artifact/plantuml"
	"github.com/bnema/umlgen/internal/adapters/generation/openai"
	summaryadapter "github.com/bnema/umlgen/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/umlgen/internal/adapters/repo/toml"
	chainstore "github.com/bnema/umlgen/internal/adapters/secrets/chain"
	envstore "github.com/bnema/umlgen/internal/adapters/secrets/env"
	"github.com/bnema/umlgen/internal/adapters/store/memory"
	"github.com/bnema/umlgen/internal/adapters/store/sqlstore"
	"github.com/bnema/umlgen/internal/application"
	"github.com/bnema/umlgen/internal/config"
	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

// togetherKeyVariable is the variable the hosted generation provider documents
// for its key; it is accepted next to UMLGEN_GENERATION_API_KEY.
const togetherKeyVariable = "TOGETHER_API_KEY"

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	service         *application.Service
	history         *application.HistoryService
	feedback        *application.FeedbackService
	secretStore     ports.SecretStore
	summaryRenderer func(application.ModelSummary, summaryadapter.RenderOptions) (string, error)
	session         *string
	closeStores     func() error
}

func (a *app) currentSession() domain.SessionID {
	if a.session == nil || *a.session == "" {
		return defaultSession
	}
	return domain.SessionID(*a.session)
}

type sessionStores interface {
	ports.ModelStore
	ports.HistoryStore
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}
	logger := cfg.NewLogger()
	clock := ports.SystemClock{}

	stores, closeStores, err := openStores(cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg.Viper())
	if err != nil {
		_ = closeStores()
		return nil, fmt.Errorf("wire feedback repository: %w", err)
	}

	secretStore, err := chainstore.NewDefault(cfg.SecretsDir(), envstore.WithAlias(cfg.Generation.APIKeyRef, togetherKeyVariable))
	if err != nil {
		_ = closeStores()
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	temperature := cfg.Generation.Temperature
	generator := openai.Generator{
		BaseURL:        cfg.Generation.BaseURL,
		Model:          cfg.Generation.Model,
		APIKeyRef:      cfg.Generation.APIKeyRef,
		Temperature:    &temperature,
		MaxTokens:      cfg.Generation.MaxTokens,
		Secrets:        secretStore,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Generation.Timeout,
		Logger:         logger,
	}
	artifacts := plantuml.Writer{
		ServerURL:  cfg.Artifact.ServerURL,
		OutputDir:  cfg.Artifact.OutputDir,
		HTTPClient: http.DefaultClient,
		Clock:      clock,
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		service: application.NewService(stores, generator, clock,
			application.WithArtifactWriter(artifacts),
			application.WithLogger(logger),
			application.WithStrictReferences(cfg.StrictReferences),
		),
		history:         application.NewHistoryService(stores, clock),
		feedback:        application.NewFeedbackService(stores, repo, clock),
		secretStore:     secretStore,
		summaryRenderer: summaryadapter.Render,
		closeStores:     closeStores,
	}, nil
}

func openStores(cfg config.Config, clock ports.Clock) (sessionStores, func() error, error) {
	if cfg.Store.Driver == config.DriverMemory {
		store := memory.NewStore(
			memory.WithModelTTL(cfg.Store.ModelTTL),
			memory.WithHistoryTTL(cfg.Store.HistoryTTL),
			memory.WithClock(clock),
		)
		return store, func() error { return nil }, nil
	}

	dialect, err := sqlstore.ParseDialect(cfg.Store.Driver)
	if err != nil {
		return nil, nil, err
	}
	store, err := sqlstore.Open(context.Background(), dialect, cfg.Store.DSN,
		sqlstore.WithModelTTL(cfg.Store.ModelTTL),
		sqlstore.WithHistoryTTL(cfg.Store.HistoryTTL),
		sqlstore.WithClock(clock),
	)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}
