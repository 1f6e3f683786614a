//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"checkout-service/internal/domain/session"
	"checkout-service/internal/infra/catalogstore"
	"checkout-service/internal/infra/memstore"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"
	"checkout-service/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.SessionStore
	clock    *clock.MockClock
	commands commands.CheckoutCommands
	queries  queries.CheckoutQueries
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	cfg := config.NewTestConfig()
	s.ctx = context.Background()
	s.store = memstore.NewSessionStore()
	s.clock = clock.NewMockClock(baseTime)

	factory := session.NewLineItemFactory(catalogstore.NewStaticCatalog(), session.NewSequenceIDGenerator())
	s.commands = commands.NewCheckoutCommands(s.store, factory, s.clock, cfg.Checkout, cfg.Session)
	s.queries = queries.NewCheckoutQueries(s.store, s.clock)
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func items(productID string, quantity int) *[]session.LineItemInput {
	return &[]session.LineItemInput{{ProductID: productID, Quantity: quantity}}
}

func ptr[T any](v T) *T {
	return &v
}

// ================================================================================
// Create
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestCreateDerivesTotalsAndStatus() {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 12)})
	s.Require().NoError(err)

	s.Equal("incomplete", rm.Status)
	s.Equal("usd", rm.Currency)
	s.Require().Len(rm.Totals, 3)
	s.Equal(int64(3588), rm.Totals[0].Amount)
	s.Equal(int64(287), rm.Totals[1].Amount)
	s.Equal(int64(3875), rm.Totals[2].Amount)
	s.Equal(baseTime.Add(6*time.Hour), rm.ExpiresAt)
	s.Len(rm.Messages, 2)
	s.Nil(rm.Order)
}

func (s *CheckoutCommandsTestSuite) TestCreateWithoutItemsOrBuyer() {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{})
	s.Require().NoError(err)

	s.Equal("incomplete", rm.Status)
	s.Empty(rm.LineItems)
	s.Require().Len(rm.Totals, 3)
	s.Zero(rm.Totals[2].Amount)
}

func (s *CheckoutCommandsTestSuite) TestCreateWithCompleteBuyerIsReady() {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{
		Items: items("1", 2),
		Buyer: &commands.BuyerInput{
			Email:    ptr("  Buyer@Example.com "),
			FullName: ptr(" Ada Lovelace "),
		},
	})
	s.Require().NoError(err)

	s.Equal("ready_for_complete", rm.Status)
	s.Require().NotNil(rm.Buyer)
	s.Equal("buyer@example.com", rm.Buyer.Email)
	s.Equal("Ada Lovelace", rm.Buyer.FullName)
	s.Empty(rm.Messages)
}

func (s *CheckoutCommandsTestSuite) TestCreateDropsUnknownProducts() {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{
		Items: &[]session.LineItemInput{
			{ProductID: "1", Quantity: 1},
			{ProductID: "unknown", Quantity: 3},
		},
	})
	s.Require().NoError(err)

	s.Require().Len(rm.LineItems, 1)
	s.Equal("1", rm.LineItems[0].ProductID)
}

func (s *CheckoutCommandsTestSuite) TestCreateInvalidQuantity() {
	for _, q := range []int{0, 101} {
		_, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", q)})
		s.Require().ErrorIs(err, errs.ErrInvalidRequest, "quantity %d", q)
	}
}

func (s *CheckoutCommandsTestSuite) TestCreateEmptyItemList() {
	empty := []session.LineItemInput{}
	_, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: &empty})
	s.Require().ErrorIs(err, errs.ErrInvalidRequest)
}

func (s *CheckoutCommandsTestSuite) TestCreateDiscardsInvalidBuyerFields() {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{
		Buyer: &commands.BuyerInput{Email: ptr("not-an-email"), FullName: ptr("   ")},
	})
	s.Require().NoError(err)

	s.Nil(rm.Buyer)
	s.Equal("incomplete", rm.Status)
}

// ================================================================================
// Update
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestUpdateReplacesLineItems() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 12)})
	s.Require().NoError(err)

	updated, err := s.commands.Update(s.ctx, created.ID, commands.UpdateSessionRequest{Items: items("2", 1)})
	s.Require().NoError(err)

	s.Require().Len(updated.LineItems, 1)
	s.Equal("2", updated.LineItems[0].ProductID)
	s.Equal(int64(499), updated.Totals[0].Amount)
	s.NotEqual(created.LineItems[0].ID, updated.LineItems[0].ID, "line items are rebuilt, not mutated")
}

func (s *CheckoutCommandsTestSuite) TestUpdateMergesBuyerFields() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{
		Items: items("1", 12),
		Buyer: &commands.BuyerInput{Email: ptr("a@b.com")},
	})
	s.Require().NoError(err)
	s.Equal("incomplete", created.Status)

	updated, err := s.commands.Update(s.ctx, created.ID, commands.UpdateSessionRequest{
		Buyer: &commands.BuyerInput{FullName: ptr("A B")},
	})
	s.Require().NoError(err)

	s.Require().NotNil(updated.Buyer)
	s.Equal("a@b.com", updated.Buyer.Email, "field absent from patch is preserved")
	s.Equal("A B", updated.Buyer.FullName)
	s.Equal("ready_for_complete", updated.Status)
	s.Empty(updated.Messages)
}

func (s *CheckoutCommandsTestSuite) TestUpdateInvalidRequestLeavesSessionUnmodified() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 12)})
	s.Require().NoError(err)

	_, err = s.commands.Update(s.ctx, created.ID, commands.UpdateSessionRequest{Items: items("1", 101)})
	s.Require().ErrorIs(err, errs.ErrInvalidRequest)

	current, err := s.queries.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, current)
}

func (s *CheckoutCommandsTestSuite) TestUpdateUnknownSession() {
	_, err := s.commands.Update(s.ctx, uuid.New(), commands.UpdateSessionRequest{Items: items("1", 1)})
	s.Require().ErrorIs(err, errs.ErrSessionNotFound)
}

func (s *CheckoutCommandsTestSuite) TestUpdateCompletedSessionRejected() {
	rm := s.createReadySession()

	completed, err := s.commands.Complete(s.ctx, rm.ID)
	s.Require().NoError(err)
	s.Equal("completed", completed.Status)

	_, err = s.commands.Update(s.ctx, rm.ID, commands.UpdateSessionRequest{Items: items("2", 1)})
	s.Require().ErrorIs(err, errs.ErrSessionCompleted)

	current, err := s.queries.Get(s.ctx, rm.ID)
	s.Require().NoError(err)
	s.Equal(completed, current)
}

// ================================================================================
// Complete
// ================================================================================

func (s *CheckoutCommandsTestSuite) createReadySession() *readmodel.SessionRM {
	rm, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{
		Items: items("1", 12),
		Buyer: &commands.BuyerInput{Email: ptr("a@b.com"), FullName: ptr("A B")},
	})
	s.Require().NoError(err)
	s.Require().Equal("ready_for_complete", rm.Status)
	return rm
}

func (s *CheckoutCommandsTestSuite) TestCompleteReadySession() {
	rm := s.createReadySession()

	completed, err := s.commands.Complete(s.ctx, rm.ID)
	s.Require().NoError(err)

	s.Equal("completed", completed.Status)
	s.Require().NotNil(completed.Order)
	s.Contains(completed.Order.Permalink, completed.Order.ID.String())
	s.Require().Len(completed.Messages, 1)
	s.Equal("order_confirmed", completed.Messages[0].Code)

	// Completion is persisted.
	current, err := s.queries.Get(s.ctx, rm.ID)
	s.Require().NoError(err)
	s.Equal(completed, current)
}

func (s *CheckoutCommandsTestSuite) TestCompleteNotReadyLeavesSessionUnchanged() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 12)})
	s.Require().NoError(err)

	result, err := s.commands.Complete(s.ctx, created.ID)
	s.Require().NoError(err)

	s.Equal("incomplete", result.Status)
	s.Nil(result.Order)
	s.Equal(created.LineItems, result.LineItems)
	s.Equal(created.Totals, result.Totals)

	// The not_ready message rides on the response only.
	s.Require().NotEmpty(result.Messages)
	last := result.Messages[len(result.Messages)-1]
	s.Equal("not_ready", last.Code)

	current, err := s.queries.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, current, "stored session must not change")
}

func (s *CheckoutCommandsTestSuite) TestCompleteTwiceIsNotReady() {
	rm := s.createReadySession()

	first, err := s.commands.Complete(s.ctx, rm.ID)
	s.Require().NoError(err)
	s.Equal("completed", first.Status)

	second, err := s.commands.Complete(s.ctx, rm.ID)
	s.Require().NoError(err)

	s.Equal("completed", second.Status)
	s.Equal(first.Order, second.Order)
	last := second.Messages[len(second.Messages)-1]
	s.Equal("not_ready", last.Code)
}

// ================================================================================
// Expiry
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestExpiredSessionIsUnreachable() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 1)})
	s.Require().NoError(err)

	s.clock.Advance(6*time.Hour + time.Minute)

	// The discovering call reports expired and evicts.
	_, err = s.commands.Update(s.ctx, created.ID, commands.UpdateSessionRequest{Items: items("2", 1)})
	s.Require().ErrorIs(err, errs.ErrSessionExpired)

	// Every subsequent operation sees plain not-found.
	_, err = s.queries.Get(s.ctx, created.ID)
	s.Require().ErrorIs(err, errs.ErrSessionNotFound)
	_, err = s.commands.Complete(s.ctx, created.ID)
	s.Require().ErrorIs(err, errs.ErrSessionNotFound)
}

func (s *CheckoutCommandsTestSuite) TestGetDistinguishesExpiredFromMissing() {
	created, err := s.commands.Create(s.ctx, commands.CreateSessionRequest{Items: items("1", 1)})
	s.Require().NoError(err)

	s.clock.Advance(7 * time.Hour)

	_, err = s.queries.Get(s.ctx, created.ID)
	s.Require().ErrorIs(err, errs.ErrSessionExpired)
	s.NotErrorIs(err, errs.ErrSessionNotFound)

	_, err = s.queries.Get(s.ctx, created.ID)
	s.Require().ErrorIs(err, errs.ErrSessionNotFound)
}
