package ports

import (
	"context"
	"time"

	"github.com/bnema/umlgen/internal/domain"
)

const DefaultHistoryTTL = 3600 * time.Second

// HistoryStore keeps the ordered conversation of a session. Appending resets
// the expiry; an absent or expired history lists as empty.
type HistoryStore interface {
	Append(ctx context.Context, session domain.SessionID, entries ...domain.HistoryEntry) error
	List(ctx context.Context, session domain.SessionID) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context, session domain.SessionID) error
}
