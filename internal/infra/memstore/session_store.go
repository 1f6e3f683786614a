package memstore

import (
	"context"
	"sync"
	"time"

	"checkout-service/internal/domain/session"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// SessionStore is the volatile, single-process session store. One mutex
// serializes every access, including the sweep, which is what keeps
// read-modify-write cycles and evictions from interleaving. Context
// parameters exist so a persistent backing store can slot in behind the
// same port without touching the engine.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

func (s *SessionStore) Put(_ context.Context, sess *session.Session) error {
	stored, err := cloneSession(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = stored
	return nil
}

func (s *SessionStore) Find(_ context.Context, id uuid.UUID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("session %s not in store", id), errs.ErrSessionNotFound)
	}
	return cloneSession(stored)
}

func (s *SessionStore) Mutate(_ context.Context, id uuid.UUID, fn func(*session.Session) error) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("session %s not in store", id), errs.ErrSessionNotFound)
	}

	// fn mutates a working copy so a failing callback cannot leave the
	// stored record half-updated.
	working, err := cloneSession(stored)
	if err != nil {
		return nil, err
	}
	if err := fn(working); err != nil {
		return nil, err
	}
	s.sessions[id] = working

	return cloneSession(working)
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Sweep(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.HasExpired(now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func cloneSession(src *session.Session) (*session.Session, error) {
	dst := &session.Session{}
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "failed to clone session")
	}
	return dst, nil
}

var _ shared.SessionStore = (*SessionStore)(nil)
