package memstore

import (
	"context"
	"sync"

	"checkout-service/internal/usecase/shared"
)

// ReplayStore caches full responses of mutating calls by idempotency
// key. Entries carry no individual TTL; the sweeper clears the whole
// map on a coarse interval instead. That makes a key technically
// reusable for a different logical call after a clear, which is an
// accepted imprecision rather than a strict exactly-once guarantee.
type ReplayStore struct {
	mu      sync.RWMutex
	entries map[string]*shared.CapturedResponse
}

func NewReplayStore() *ReplayStore {
	return &ReplayStore{
		entries: make(map[string]*shared.CapturedResponse),
	}
}

func (r *ReplayStore) Get(_ context.Context, key string) (*shared.CapturedResponse, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resp, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return cloneResponse(resp), true
}

func (r *ReplayStore) Put(_ context.Context, key string, resp *shared.CapturedResponse) {
	stored := cloneResponse(resp)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = stored
}

func (r *ReplayStore) Clear(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cleared := len(r.entries)
	r.entries = make(map[string]*shared.CapturedResponse)
	return cleared
}

func cloneResponse(src *shared.CapturedResponse) *shared.CapturedResponse {
	body := make([]byte, len(src.Body))
	copy(body, src.Body)
	return &shared.CapturedResponse{
		Status:      src.Status,
		ContentType: src.ContentType,
		Body:        body,
	}
}

var _ shared.ReplayStore = (*ReplayStore)(nil)
