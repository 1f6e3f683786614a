package commands

import (
	"context"
	"strings"

	"checkout-service/internal/domain/session"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/pkg/patch"
	"checkout-service/internal/usecase/readmodel"
	"checkout-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// BuyerInput carries optional buyer contact fields. Nil fields are
// absent from the request.
type BuyerInput struct {
	Email    *string
	FullName *string
}

type CreateSessionRequest struct {
	// Items is nil when the caller supplied no line-item list at all; a
	// present-but-empty list is a structural violation.
	Items    *[]session.LineItemInput
	Buyer    *BuyerInput
	Currency string
}

type UpdateSessionRequest struct {
	// Items, when present, fully replaces the session's line items.
	Items *[]session.LineItemInput
	Buyer *BuyerInput
}

type CheckoutCommands interface {
	Create(ctx context.Context, req CreateSessionRequest) (*readmodel.SessionRM, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateSessionRequest) (*readmodel.SessionRM, error)
	Complete(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
}

type checkoutCommandsImpl struct {
	store       shared.SessionStore
	factory     *session.LineItemFactory
	clock       clock.Clock
	checkoutCfg config.CheckoutConfig
	sessionCfg  config.SessionConfig
}

func NewCheckoutCommands(
	store shared.SessionStore,
	factory *session.LineItemFactory,
	clk clock.Clock,
	checkoutCfg config.CheckoutConfig,
	sessionCfg config.SessionConfig,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		store:       store,
		factory:     factory,
		clock:       clk,
		checkoutCfg: checkoutCfg,
		sessionCfg:  sessionCfg,
	}
}

func (c *checkoutCommandsImpl) Create(ctx context.Context, req CreateSessionRequest) (*readmodel.SessionRM, error) {
	items := []session.LineItem{}
	if req.Items != nil {
		if err := session.ValidateLineItemInputs(*req.Items); err != nil {
			return nil, err
		}
		items = c.factory.Build(*req.Items)
	}

	buyer := session.Buyer{}
	if req.Buyer != nil {
		buyer = session.NewBuyer(
			patch.Coalesce(req.Buyer.Email, ""),
			patch.Coalesce(req.Buyer.FullName, ""),
		)
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = c.checkoutCfg.DefaultCurrency
	}

	s := session.NewSession(currency, items, buyer, c.clock.Now(), c.sessionCfg.TTL)
	if err := c.store.Put(ctx, s); err != nil {
		return nil, errs.Wrap(err, "failed to store checkout session")
	}

	return readmodel.FromSession(s), nil
}

func (c *checkoutCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateSessionRequest) (*readmodel.SessionRM, error) {
	// Structural validation runs before any stored state is touched, so
	// an invalid request leaves the session exactly as it was.
	if req.Items != nil {
		if err := session.ValidateLineItemInputs(*req.Items); err != nil {
			return nil, err
		}
	}

	now := c.clock.Now()
	s, err := shared.MutateLive(ctx, c.store, now, id, func(s *session.Session) error {
		if s.Status == session.StatusCompleted {
			return errs.Mark(errs.Newf("session %s is already completed", id), errs.ErrSessionCompleted)
		}
		if req.Items != nil {
			s.ReplaceLineItems(c.factory.Build(*req.Items))
		}
		if req.Buyer != nil {
			s.MergeBuyer(session.BuyerPatch{Email: req.Buyer.Email, FullName: req.Buyer.FullName})
		}
		s.Refresh()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return readmodel.FromSession(s), nil
}

func (c *checkoutCommandsImpl) Complete(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	now := c.clock.Now()
	notReady := false

	s, err := shared.MutateLive(ctx, c.store, now, id, func(s *session.Session) error {
		if s.Status != session.StatusReadyForComplete {
			// Covers incomplete sessions and re-completion of an
			// already-completed one: no state change either way.
			notReady = true
			return nil
		}
		orderID := uuid.New()
		s.CompleteOrder(orderID, c.checkoutCfg.OrderPermalinkBase+"/"+orderID.String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm := readmodel.FromSession(s)
	if notReady {
		rm.Messages = append(rm.Messages, readmodel.FromMessage(session.NotReadyMessage()))
	}
	return rm, nil
}
