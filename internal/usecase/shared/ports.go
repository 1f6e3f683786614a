package shared

import (
	"context"
	"time"

	"checkout-service/internal/domain/session"

	"github.com/google/uuid"
)

// SessionStore is the abstract key-value store owning all session
// records. Implementations must serialize Find/Put/Mutate/Delete/Sweep
// so a sweep can never interleave destructively with an in-flight
// read or mutation of the same session. Returned sessions are deep
// copies; no caller retains a reference into the store.
type SessionStore interface {
	Put(ctx context.Context, s *session.Session) error
	Find(ctx context.Context, id uuid.UUID) (*session.Session, error)
	// Mutate runs fn on the stored record under the store lock and
	// returns a snapshot of the result. If fn fails the stored record
	// must be left as it was.
	Mutate(ctx context.Context, id uuid.UUID, fn func(*session.Session) error) (*session.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Sweep evicts every session whose expiry is in the past and
	// returns the number evicted.
	Sweep(ctx context.Context, now time.Time) int
}

// CapturedResponse is the exact response previously produced for an
// idempotency key: replaying it must be byte-identical to the original.
type CapturedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// ReplayStore caches responses of mutating calls by idempotency key.
// Entries have no individual TTL; Clear drops the whole cache on a
// coarse interval, so a key becomes technically reusable afterwards.
type ReplayStore interface {
	Get(ctx context.Context, key string) (*CapturedResponse, bool)
	Put(ctx context.Context, key string, resp *CapturedResponse)
	Clear(ctx context.Context) int
}
