package ports

import (
	"context"

	"github.com/bnema/umlgen/internal/domain"
)

type FeedbackRepository interface {
	GetByID(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
	Save(ctx context.Context, feedback domain.Feedback) error
}
