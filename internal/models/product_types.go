package models

// Product categories are a fixed set. The admin form validates against this
// list before a product is created or updated.
var ProductCategories = []string{"tshirts", "pants", "shoes", "socks"}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c string) bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog record. It is immutable during normal browsing;
// admin edit operations replace the record wholesale.
// OriginalPrice is a pointer so that "not on sale" serializes as absent.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	Category      string            `json:"category"`
	Series        string            `json:"series,omitempty"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"originalPrice,omitempty"`
	Image         string            `json:"image,omitempty"`
	Description   string            `json:"description,omitempty"`
	Features      []string          `json:"features,omitempty"`
	Specs         map[string]string `json:"specs,omitempty"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	InStock       bool              `json:"inStock"`
	Sizes         []string          `json:"sizes,omitempty"`
}

// OnSale reports whether the product carries a discount marker.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil
}
