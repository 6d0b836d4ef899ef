package repositories

import (
	"context"
	"time"

	"premier-properties/internal/services"
)

// SessionRepository keeps browsing sessions between requests.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*services.Session, bool)
	Save(ctx context.Context, session *services.Session) error
	Delete(ctx context.Context, id string) error
	// Sweep drops sessions idle since before now minus the idle TTL.
	Sweep(now time.Time) int
	Len() int
}
