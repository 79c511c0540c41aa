// Package pricing computes the order summary: delivery fee, VAT and total
// for a given cart subtotal. It is a pure function of the current cart lines
// and is recomputed on every read, never cached.
package pricing

import "github.com/shopspring/decimal"

const (
	// FreeDeliveryThreshold is the subtotal (NPR) at which delivery is free.
	FreeDeliveryThreshold = 3000

	// DeliveryFee is the flat fee below the threshold.
	DeliveryFee = 100

	// TaxRate is Nepal's 13% VAT.
	TaxRate = 0.13
)

// Summary is the computed order breakdown.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Compute derives the summary from a subtotal. Decimal arithmetic keeps the
// tax exact: 13% of 2999 is 389.87, not 389.869999....
func Compute(subtotal float64) Summary {
	sub := decimal.NewFromFloat(subtotal)

	fee := decimal.NewFromInt(DeliveryFee)
	if sub.GreaterThanOrEqual(decimal.NewFromInt(FreeDeliveryThreshold)) {
		fee = decimal.Zero
	}

	tax := sub.Mul(decimal.NewFromFloat(TaxRate)).Round(2)
	total := sub.Add(fee).Add(tax).Round(2)

	return Summary{
		Subtotal:    sub.InexactFloat64(),
		DeliveryFee: fee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}
}
