package queries

import (
	"context"

	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/usecase/readmodel"
	"checkout-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	// Get is read-only apart from the eviction side effect when the
	// lookup discovers an expired session.
	Get(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
}

type checkoutQueriesImpl struct {
	store shared.SessionStore
	clock clock.Clock
}

func NewCheckoutQueries(store shared.SessionStore, clk clock.Clock) CheckoutQueries {
	return &checkoutQueriesImpl{store: store, clock: clk}
}

func (q *checkoutQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	s, err := shared.FindLive(ctx, q.store, q.clock.Now(), id)
	if err != nil {
		return nil, err
	}
	return readmodel.FromSession(s), nil
}
