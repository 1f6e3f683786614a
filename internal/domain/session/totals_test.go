//go:build unit

package session_test

import (
	"testing"

	"checkout-service/internal/domain/session"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(unitPrice int64, quantity int) session.LineItem {
	return session.LineItem{
		ID:        "li_1",
		ProductID: "1",
		Title:     "Rose Bouquet",
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  unitPrice * int64(quantity),
	}
}

func TestCalculateTotals(t *testing.T) {
	t.Run("fixed order and labels", func(t *testing.T) {
		totals := session.CalculateTotals([]session.LineItem{item(299, 12)})

		expected := []session.Total{
			{Type: session.TotalTypeSubtotal, Amount: 3588, Label: "Subtotal"},
			{Type: session.TotalTypeTax, Amount: 287, Label: "Tax"},
			{Type: session.TotalTypeTotal, Amount: 3875, Label: "Total"},
		}
		if diff := cmp.Diff(expected, totals); diff != "" {
			t.Errorf("totals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty cart yields zero totals", func(t *testing.T) {
		totals := session.CalculateTotals(nil)

		require.Len(t, totals, 3)
		for _, total := range totals {
			assert.Zero(t, total.Amount)
		}
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		cases := []struct {
			subtotal int64
			tax      int64
		}{
			{subtotal: 100, tax: 8},
			{subtotal: 106, tax: 8},  // 8.48 rounds down
			{subtotal: 107, tax: 9},  // 8.56 rounds up
			{subtotal: 625, tax: 50}, // exactly 50.00
			{subtotal: 631, tax: 50}, // 50.48 rounds down
			{subtotal: 632, tax: 51}, // 50.56 rounds up
		}
		for _, c := range cases {
			totals := session.CalculateTotals([]session.LineItem{item(c.subtotal, 1)})
			assert.Equal(t, c.tax, totals[1].Amount, "subtotal %d", c.subtotal)
		}
	})

	t.Run("holds for every valid quantity", func(t *testing.T) {
		const price = int64(299)
		for q := session.MinQuantity; q <= session.MaxQuantity; q++ {
			totals := session.CalculateTotals([]session.LineItem{item(price, q)})

			subtotal := price * int64(q)
			tax := (subtotal*8 + 50) / 100

			require.Equal(t, subtotal, totals[0].Amount)
			require.Equal(t, tax, totals[1].Amount)
			require.Equal(t, subtotal+tax, totals[2].Amount)
		}
	})
}
