package models

// CartLine is one cart entry: a full product snapshot plus quantity and the
// size the shopper picked. The embedded Product keeps the stored JSON flat,
// matching the shape the cart has always been persisted in.
//
// Uniqueness key = (ID, SelectedSize): the same product in two sizes is two
// separate lines. Quantity is >= 1 for as long as the line exists.
type CartLine struct {
	Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
