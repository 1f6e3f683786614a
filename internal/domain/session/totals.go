package session

// Tax is a flat 8% of the subtotal, rounded half-up on minor units.
const (
	taxRateBasisPoints  = 800
	basisPointsPerWhole = 10000
)

// CalculateTotals derives subtotal/tax/total from the given line items.
// It always produces exactly three entries in that order.
func CalculateTotals(items []LineItem) []Total {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Subtotal
	}

	tax := roundHalfUp(subtotal*taxRateBasisPoints, basisPointsPerWhole)

	return []Total{
		{Type: TotalTypeSubtotal, Amount: subtotal, Label: "Subtotal"},
		{Type: TotalTypeTax, Amount: tax, Label: "Tax"},
		{Type: TotalTypeTotal, Amount: subtotal + tax, Label: "Total"},
	}
}

func roundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}
