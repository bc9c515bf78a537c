package ports

import (
	"context"

	"github.com/bnema/umlgen/internal/domain"
)

type ArtifactRequest struct {
	Session domain.SessionID
	View    domain.ViewID
	Index   int
	Markup  string
}

// ArtifactWriter persists rendered markup as an image and returns its path.
type ArtifactWriter interface {
	Write(ctx context.Context, req ArtifactRequest) (string, error)
}
