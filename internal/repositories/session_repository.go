package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"premier-properties/internal/services"
	"premier-properties/pkg/logger"
	"premier-properties/pkg/metrics"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*services.Session
	idleTTL  time.Duration
}

func NewSessionRepository(idleTTL time.Duration) SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*services.Session),
		idleTTL:  idleTTL,
	}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*services.Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(s.LastSeen()) > r.idleTTL {
		return nil, false
	}
	return s, true
}

func (r *sessionRepository) Save(ctx context.Context, session *services.Session) error {
	if session == nil || session.ID() == "" {
		return fmt.Errorf("session without id")
	}
	r.mu.Lock()
	r.sessions[session.ID()] = session
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return nil
}

func (r *sessionRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.idleTTL {
			delete(r.sessions, id)
			removed++
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	if removed > 0 {
		logger.GlobalLogger.Debugf("Expired idle sessions: removed=%d, remaining=%d", removed, n)
	}
	return removed
}

func (r *sessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// RunJanitor sweeps repo every interval until ctx is done.
func RunJanitor(ctx context.Context, repo SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			repo.Sweep(now)
		}
	}
}
