// Package openai produces canonical models through an OpenAI-compatible
// chat-completions endpoint such as Together AI.
package openai

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

const (
	DefaultBaseURL     = "https://api.together.xyz/v1"
	DefaultModel       = "moonshotai/Kimi-K2-Instruct-0905"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 10000

	completionsPath  = "chat/completions"
	maxResponseBytes = 8 << 20
)

//go:embed system_prompt.txt
var systemPrompt string

// Generator implements ports.ModelGenerator. The bearer key is looked up in
// Secrets under APIKeyRef on every call so a rotated key is picked up without
// a restart. A nil Temperature falls back to DefaultTemperature; zero is sent
// as is.
type Generator struct {
	BaseURL        string
	Model          string
	APIKeyRef      string
	Temperature    *float64
	MaxTokens      int
	Secrets        ports.SecretStore
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

var _ ports.ModelGenerator = Generator{}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
		TotalTokens      int64 `json:"total_tokens"`
	} `json:"usage"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate sends one completion request. Usage is returned even when the
// reply does not parse into a model, since the tokens were spent.
func (g Generator) Generate(ctx context.Context, prompt string) (domain.SystemModel, domain.TokenUsage, error) {
	if strings.TrimSpace(prompt) == "" {
		return domain.SystemModel{}, domain.TokenUsage{}, errors.New("prompt is required")
	}

	endpoint, err := buildAPIURL(g.baseURL(), completionsPath)
	if err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, err
	}

	apiKey, err := g.apiKey(ctx)
	if err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, err
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Analyze this system and create a comprehensive canonical model:\n\n" + prompt},
		},
		Temperature: g.temperature(),
		MaxTokens:   g.maxTokens(),
	})
	if err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, fmt.Errorf("encode completion request: %w", err)
	}

	requestCtx, cancel := g.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	started := time.Now()
	resp, err := g.httpClient().Do(req)
	if err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, fmt.Errorf("request completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SystemModel{}, domain.TokenUsage{}, fmt.Errorf("request completion: %s", decodeAPIError(resp))
	}

	var payload chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.SystemModel{}, domain.TokenUsage{}, fmt.Errorf("decode completion response: %w", err)
	}

	usage := domain.TokenUsage{
		PromptTokens:     payload.Usage.PromptTokens,
		CompletionTokens: payload.Usage.CompletionTokens,
		TotalTokens:      payload.Usage.TotalTokens,
	}
	g.logger().Debug("completion received", "model", g.model(), "tokens", usage.Total(), "elapsed", time.Since(started))

	if len(payload.Choices) == 0 {
		return domain.SystemModel{}, usage, errors.New("completion response has no choices")
	}

	model, err := domain.ParseModel(payload.Choices[0].Message.Content)
	if err != nil {
		return domain.SystemModel{}, usage, err
	}

	return model, usage, nil
}

func (g Generator) apiKey(ctx context.Context) (string, error) {
	if g.Secrets == nil {
		return "", fmt.Errorf("resolve api key %q: no secret store configured", g.APIKeyRef)
	}

	key, err := g.Secrets.Get(ctx, g.APIKeyRef)
	if err != nil {
		return "", fmt.Errorf("resolve api key %q: %w", g.APIKeyRef, err)
	}
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("resolve api key %q: %w", g.APIKeyRef, domain.ErrSecretNotFound)
	}
	return strings.TrimSpace(key), nil
}

func (g Generator) baseURL() string {
	if g.BaseURL == "" {
		return DefaultBaseURL
	}
	return g.BaseURL
}

func (g Generator) model() string {
	if g.Model == "" {
		return DefaultModel
	}
	return g.Model
}

func (g Generator) temperature() float64 {
	if g.Temperature == nil {
		return DefaultTemperature
	}
	return *g.Temperature
}

func (g Generator) maxTokens() int {
	if g.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return g.MaxTokens
}

func (g Generator) httpClient() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func (g Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// requestContext bounds the call when the caller set no deadline. Model
// generation is slow, so the fallback is generous.
func (g Generator) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := g.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 3 * time.Minute
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeAPIError(resp *http.Response) string {
	var apiErr apiErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if apiErr.Error.Type != "" {
		return fmt.Sprintf("status %d: %s: %s", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
}

// buildAPIURL resolves path below baseURL. The base keeps its own path, so
// ".../v1" resolves to ".../v1/chat/completions".
func buildAPIURL(baseURL string, path string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
