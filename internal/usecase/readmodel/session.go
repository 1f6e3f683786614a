package readmodel

import (
	"time"

	"checkout-service/internal/domain/session"

	"github.com/google/uuid"
)

type LineItemRM struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type BuyerRM struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

type TotalRM struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
	Label  string `json:"label"`
}

type MessageRM struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Content  string `json:"content"`
	Path     string `json:"path,omitempty"`
}

type OrderRM struct {
	ID        uuid.UUID `json:"id"`
	Permalink string    `json:"permalink"`
}

type SessionRM struct {
	ID        uuid.UUID    `json:"id"`
	Status    string       `json:"status"`
	Currency  string       `json:"currency"`
	LineItems []LineItemRM `json:"line_items"`
	Buyer     *BuyerRM     `json:"buyer,omitempty"`
	Totals    []TotalRM    `json:"totals"`
	Messages  []MessageRM  `json:"messages"`
	Order     *OrderRM     `json:"order,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func FromSession(s *session.Session) *SessionRM {
	rm := &SessionRM{
		ID:        s.ID,
		Status:    string(s.Status),
		Currency:  s.Currency,
		LineItems: make([]LineItemRM, 0, len(s.LineItems)),
		Totals:    make([]TotalRM, 0, len(s.Totals)),
		Messages:  make([]MessageRM, 0, len(s.Messages)),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
	for _, it := range s.LineItems {
		rm.LineItems = append(rm.LineItems, LineItemRM{
			ID:        it.ID,
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	if s.Buyer.Email != "" || s.Buyer.FullName != "" {
		rm.Buyer = &BuyerRM{Email: s.Buyer.Email, FullName: s.Buyer.FullName}
	}
	for _, t := range s.Totals {
		rm.Totals = append(rm.Totals, TotalRM{Type: string(t.Type), Amount: t.Amount, Label: t.Label})
	}
	for _, m := range s.Messages {
		rm.Messages = append(rm.Messages, FromMessage(m))
	}
	if s.Order != nil {
		rm.Order = &OrderRM{ID: s.Order.ID, Permalink: s.Order.Permalink}
	}
	return rm
}

func FromMessage(m session.Message) MessageRM {
	return MessageRM{
		Type:     string(m.Type),
		Code:     m.Code,
		Severity: string(m.Severity),
		Content:  m.Content,
		Path:     m.Path,
	}
}
