package ports

import (
	"context"

	"github.com/bnema/umlgen/internal/domain"
)

// ModelGenerator turns a natural-language description into a canonical model.
type ModelGenerator interface {
	Generate(ctx context.Context, prompt string) (domain.SystemModel, domain.TokenUsage, error)
}
