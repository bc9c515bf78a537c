package ports

import (
	"context"
	"time"

	"github.com/bnema/umlgen/internal/domain"
)

// DefaultModelTTL is how long a session model lives after its last mutation.
const DefaultModelTTL = 7200 * time.Second

// ModelStore keeps one canonical model per session. Every mutation resets the
// entry's expiry. Absent and expired entries are reported with found=false and
// a nil error; backend failures wrap domain.ErrStoreUnavailable.
type ModelStore interface {
	Save(ctx context.Context, session domain.SessionID, model domain.SystemModel) error
	Get(ctx context.Context, session domain.SessionID) (domain.SystemModel, bool, error)
	Exists(ctx context.Context, session domain.SessionID) (bool, error)
	Delete(ctx context.Context, session domain.SessionID) error
	// Update applies patch to the stored model. It reports false when no model
	// is stored for the session.
	Update(ctx context.Context, session domain.SessionID, patch domain.ModelPatch) (bool, error)
}
