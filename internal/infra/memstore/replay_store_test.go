//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"checkout-service/internal/infra/memstore"
	"checkout-service/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayStore(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		store := memstore.NewReplayStore()

		_, ok := store.Get(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("returns the stored response verbatim", func(t *testing.T) {
		store := memstore.NewReplayStore()
		resp := &shared.CapturedResponse{
			Status:      201,
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`{"id":"abc"}`),
		}
		store.Put(ctx, "key-1", resp)

		got, ok := store.Get(ctx, "key-1")
		require.True(t, ok)
		assert.Equal(t, resp.Status, got.Status)
		assert.Equal(t, resp.ContentType, got.ContentType)
		assert.Equal(t, resp.Body, got.Body)
	})

	t.Run("stored body is isolated from the caller's slice", func(t *testing.T) {
		store := memstore.NewReplayStore()
		body := []byte(`{"id":"abc"}`)
		store.Put(ctx, "key-1", &shared.CapturedResponse{Status: 200, Body: body})

		body[0] = 'X'

		got, ok := store.Get(ctx, "key-1")
		require.True(t, ok)
		assert.Equal(t, byte('{'), got.Body[0])
	})

	t.Run("clear drops every entry at once", func(t *testing.T) {
		store := memstore.NewReplayStore()
		store.Put(ctx, "a", &shared.CapturedResponse{Status: 200})
		store.Put(ctx, "b", &shared.CapturedResponse{Status: 201})

		assert.Equal(t, 2, store.Clear(ctx))

		_, ok := store.Get(ctx, "a")
		assert.False(t, ok)
		_, ok = store.Get(ctx, "b")
		assert.False(t, ok)

		assert.Zero(t, store.Clear(ctx))
	})
}
