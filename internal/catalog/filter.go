package catalog

import (
	"sort"
	"strings"

	"github.com/trendycorner/storefront-golang/internal/models"
)

// SortKey selects the product listing order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
)

// Filter describes one product listing query. Price bounds are inclusive and
// only applied when set; an empty brand set means no brand filter.
type Filter struct {
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	Brands      []string
	InStockOnly bool
	Sort        SortKey
}

// Search runs the full filter/sort pipeline: category, then price range,
// then brand membership (OR), then the in-stock flag, then the sort. The
// result is recomputed from scratch on every call.
func (c *Catalog) Search(f Filter) []models.Product {
	result := c.List()

	if f.Category != "" {
		result = keep(result, func(p models.Product) bool { return p.Category == f.Category })
	}
	if f.MinPrice != nil {
		result = keep(result, func(p models.Product) bool { return p.Price >= *f.MinPrice })
	}
	if f.MaxPrice != nil {
		result = keep(result, func(p models.Product) bool { return p.Price <= *f.MaxPrice })
	}
	if len(f.Brands) > 0 {
		wanted := make(map[string]bool, len(f.Brands))
		for _, b := range f.Brands {
			wanted[b] = true
		}
		result = keep(result, func(p models.Product) bool { return wanted[p.Brand] })
	}
	if f.InStockOnly {
		result = keep(result, func(p models.Product) bool { return p.InStock })
	}

	sortProducts(result, f.Sort)
	return result
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the slice in place. All sorts are stable so that ties
// preserve catalog order; "featured" in particular partitions on-sale items
// first without reshuffling either partition.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	default: // featured
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].OnSale() && !products[j].OnSale()
		})
	}
}
