// Package plantuml turns rendered markup into image files through a PlantUML
// server.
package plantuml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/umlgen/internal/domain"
	"github.com/bnema/umlgen/internal/ports"
)

const (
	DefaultServerURL = "https://www.plantuml.com/plantuml"
	DefaultOutputDir = "output_diagrams"

	maxImageBytes   = 32 << 20
	outputDirMode   = 0o755
	imageFileMode   = 0o644
	timestampLayout = "20060102_150405"
)

// Writer fetches a PNG for each request and stores it as
// {session}_{view}_{yyyymmdd_hhmmss}_{index}.png under OutputDir.
type Writer struct {
	ServerURL      string
	OutputDir      string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Clock          ports.Clock
}

var _ ports.ArtifactWriter = Writer{}

func (w Writer) Write(ctx context.Context, req ports.ArtifactRequest) (string, error) {
	if strings.TrimSpace(req.Markup) == "" {
		return "", fmt.Errorf("%w: markup is empty", domain.ErrArtifactUnavailable)
	}

	image, err := w.fetch(ctx, req.Markup)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrArtifactUnavailable, err)
	}

	path := filepath.Join(w.outputDir(), FileName(req, w.now()))
	if err := writeAtomic(path, image); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrArtifactUnavailable, err)
	}
	return path, nil
}

// FileName builds the artifact name. Path separators in the session id are
// replaced so the file always lands directly in the output directory.
func FileName(req ports.ArtifactRequest, at time.Time) string {
	session := strings.NewReplacer("/", "-", `\`, "-", "..", "-").Replace(string(req.Session))
	return fmt.Sprintf("%s_%s_%s_%d.png", session, req.View, at.Format(timestampLayout), req.Index)
}

func (w Writer) fetch(ctx context.Context, markup string) ([]byte, error) {
	encoded, err := Encode(markup)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimRight(w.serverURL(), "/") + "/png/" + encoded

	requestCtx, cancel := w.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create image request: %w", err)
	}

	resp, err := w.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request image: status %d", resp.StatusCode)
	}

	image, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(image) == 0 {
		return nil, errors.New("request image: empty body")
	}
	return image, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, outputDirMode); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".artifact-*.png.tmp")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Chmod(imageFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace image: %w", err)
	}
	cleanup = false
	return nil
}

func (w Writer) serverURL() string {
	if w.ServerURL == "" {
		return DefaultServerURL
	}
	return w.ServerURL
}

func (w Writer) outputDir() string {
	if w.OutputDir == "" {
		return DefaultOutputDir
	}
	return w.OutputDir
}

func (w Writer) now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock.Now()
}

func (w Writer) httpClient() *http.Client {
	if w.HTTPClient != nil {
		return w.HTTPClient
	}
	return http.DefaultClient
}

func (w Writer) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := w.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, requestTimeout)
}
