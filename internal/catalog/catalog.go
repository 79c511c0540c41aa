// Package catalog holds the in-memory product catalog: the static seed list
// plus whatever the admin dashboard has added, edited or deleted this
// session. Admin mutations never flow back to the seed source.
package catalog

import (
	"errors"
	"math"
	"sync"

	"github.com/trendycorner/storefront-golang/internal/models"
)

// ErrDuplicateID is returned by Add when the product id is already taken.
var ErrDuplicateID = errors.New("catalog: product id already exists")

// Catalog is a read-mostly product collection. The mutex only matters for
// admin writes arriving while shoppers browse.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

// New returns a catalog seeded with the storefront's static product list.
func New() *Catalog {
	return NewWith(seedProducts())
}

// NewWith returns a catalog over the given products. Tests use this to get
// small, isolated catalogs.
func NewWith(products []models.Product) *Catalog {
	c := &Catalog{products: make([]models.Product, len(products))}
	copy(c.products, products)
	return c
}

// List returns all products in catalog order.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory returns the products in a category, in catalog order.
func (c *Catalog) ByCategory(category string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a new product.
func (c *Catalog) Add(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.products {
		if existing.ID == p.ID {
			return ErrDuplicateID
		}
	}
	c.products = append(c.products, p)
	return nil
}

// Edit replaces the record with the same id wholesale. It reports whether a
// matching product was found.
func (c *Catalog) Edit(p models.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.products {
		if existing.ID == p.ID {
			c.products[i] = p
			return true
		}
	}
	return false
}

// Delete removes the product with the given id, reporting whether it existed.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.products {
		if existing.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// HasID reports whether any product uses the given id. The admin create
// handler uses this to find a free slug.
func (c *Catalog) HasID(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Count returns the number of products.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Brands returns the distinct brands among the category's products (all
// products when category is empty), in first-seen order. It feeds the
// filter sidebar.
func (c *Catalog) Brands(category string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}

// PriceBounds returns floor(min price) and ceil(max price) among the
// category's products. ok is false when the category has no products.
func (c *Catalog) PriceBounds(category string) (min, max float64, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if !ok {
			min, max, ok = p.Price, p.Price, true
			continue
		}
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return math.Floor(min), math.Ceil(max), ok
}
