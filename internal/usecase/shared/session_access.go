package shared

import (
	"context"
	"time"

	"checkout-service/internal/domain/session"
	"checkout-service/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// FindLive looks up a session and enforces expiry: a session past its
// ExpiresAt is evicted on discovery and reported as expired, making it
// permanently unreachable from this call onward.
func FindLive(ctx context.Context, store SessionStore, now time.Time, id uuid.UUID) (*session.Session, error) {
	s, err := store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.HasExpired(now) {
		_ = store.Delete(ctx, id)
		return nil, errs.Mark(errs.Newf("session %s expired at %s", id, s.ExpiresAt), errs.ErrSessionExpired)
	}
	return s, nil
}

// MutateLive is FindLive for read-modify-write: the expiry gate and fn
// both run under the store lock, so the mutation can never race a sweep.
func MutateLive(ctx context.Context, store SessionStore, now time.Time, id uuid.UUID, fn func(*session.Session) error) (*session.Session, error) {
	s, err := store.Mutate(ctx, id, func(s *session.Session) error {
		if s.HasExpired(now) {
			return errs.Mark(errs.Newf("session %s expired at %s", id, s.ExpiresAt), errs.ErrSessionExpired)
		}
		return fn(s)
	})
	if errors.Is(err, errs.ErrSessionExpired) {
		_ = store.Delete(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
