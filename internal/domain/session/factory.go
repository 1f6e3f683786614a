package session

import (
	"fmt"
	"sync/atomic"

	"checkout-service/internal/domain/catalog"
	"checkout-service/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 100
)

// LineItemInput is a raw product/quantity pairing as submitted by the
// caller, before any catalog lookup.
type LineItemInput struct {
	ProductID string
	Quantity  int
}

// LineItem is a priced snapshot of one product/quantity pairing. Line
// items are created fresh on every write that touches them, never
// mutated in place.
type LineItem struct {
	ID        string
	ProductID string
	Title     string
	UnitPrice int64
	Quantity  int
	Subtotal  int64
}

// IDGenerator allocates line-item identifiers. It is owned by the engine
// instance so separate instances never collide.
type IDGenerator interface {
	NextLineItemID() string
}

// SequenceIDGenerator hands out monotonically increasing identifiers
// shared across all sessions of one engine.
type SequenceIDGenerator struct {
	counter atomic.Uint64
}

func NewSequenceIDGenerator() *SequenceIDGenerator {
	return &SequenceIDGenerator{}
}

func (g *SequenceIDGenerator) NextLineItemID() string {
	return fmt.Sprintf("li_%d", g.counter.Add(1))
}

// ValidateLineItemInputs enforces the structural constraints on a
// submitted line-item list. It runs on raw input, before any
// product-existence check: an entry can pass here and still be dropped
// by the factory for referencing an unknown product.
func ValidateLineItemInputs(inputs []LineItemInput) error {
	if len(inputs) == 0 {
		return errs.Mark(errs.New("line items must be a non-empty list"), errs.ErrInvalidRequest)
	}
	for i, in := range inputs {
		if in.ProductID == "" {
			return errs.Mark(errs.Newf("line item %d is missing a product reference", i), errs.ErrInvalidRequest)
		}
		if in.Quantity < MinQuantity || in.Quantity > MaxQuantity {
			return errs.Mark(
				errs.Newf("line item %d quantity %d is outside [%d,%d]", i, in.Quantity, MinQuantity, MaxQuantity),
				errs.ErrInvalidRequest,
			)
		}
	}
	return nil
}

// LineItemFactory resolves submitted inputs into priced line-item
// snapshots, capturing product title and price at add-time.
type LineItemFactory struct {
	catalog catalog.Catalog
	ids     IDGenerator
}

func NewLineItemFactory(c catalog.Catalog, ids IDGenerator) *LineItemFactory {
	return &LineItemFactory{catalog: c, ids: ids}
}

// Build resolves each input against the catalog. Inputs referencing an
// unknown product are silently dropped rather than failing the batch.
func (f *LineItemFactory) Build(inputs []LineItemInput) []LineItem {
	items := make([]LineItem, 0, len(inputs))
	for _, in := range inputs {
		product, ok := f.catalog.GetProduct(in.ProductID)
		if !ok {
			continue
		}
		items = append(items, LineItem{
			ID:        f.ids.NextLineItemID(),
			ProductID: product.ID,
			Title:     product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  in.Quantity,
			Subtotal:  product.UnitPrice * int64(in.Quantity),
		})
	}
	return items
}
