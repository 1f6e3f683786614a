package session

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID
	Permalink string
}

// Session is a single buyer's in-progress-or-completed checkout attempt.
// Totals, Messages and Status are derived state: Refresh keeps them
// consistent with LineItems and Buyer after every mutation. Only
// CompleteOrder sets Status by hand.
type Session struct {
	ID        uuid.UUID
	Currency  string
	LineItems []LineItem
	Buyer     Buyer
	Totals    []Total
	Messages  []Message
	Status    Status
	Order     *Order
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession allocates a creation-time-ordered session id and derives
// the initial totals, messages and status.
func NewSession(currency string, items []LineItem, buyer Buyer, now time.Time, ttl time.Duration) *Session {
	s := &Session{
		ID:        uuid.Must(uuid.NewV7()),
		Currency:  currency,
		LineItems: items,
		Buyer:     buyer,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.Refresh()
	return s
}

// ReplaceLineItems fully overwrites the cart; items are never merged.
func (s *Session) ReplaceLineItems(items []LineItem) {
	s.LineItems = items
}

func (s *Session) MergeBuyer(p BuyerPatch) {
	s.Buyer = s.Buyer.Merge(p)
}

// Refresh recomputes totals, messages and status from the current line
// items and buyer. Callers must invoke it after every mutation so no
// operation can leave the session in a stale combination.
func (s *Session) Refresh() {
	s.Totals = CalculateTotals(s.LineItems)
	s.Messages = CompletenessMessages(s.Buyer)
	s.Status = DeriveStatus(s.LineItems, s.Buyer)
}

// DeriveStatus is the transition function evaluated after every
// create/update. Completion is the only transition not derivable here.
func DeriveStatus(items []LineItem, buyer Buyer) Status {
	if buyer.IsComplete() && len(items) > 0 {
		return StatusReadyForComplete
	}
	return StatusIncomplete
}

// CompleteOrder transitions ready_for_complete -> completed, attaching
// the order and replacing the message set with a single confirmation.
// There is no path back from completed.
func (s *Session) CompleteOrder(orderID uuid.UUID, permalink string) {
	s.Order = &Order{ID: orderID, Permalink: permalink}
	s.Status = StatusCompleted
	s.Messages = []Message{ConfirmationMessage(permalink)}
}

func (s *Session) HasExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
