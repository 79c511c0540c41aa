// Package cart implements the shopper's cart: a list of product lines keyed
// by (product id, selected size), persisted to storage on every mutation.
package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

// Store holds the cart lines. Totals are derived on every read, never cached.
// Instances are created per storage.Store so tests get isolated carts.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	lines   []models.CartLine
}

// New restores the cart from storage. A stored value that fails to parse is
// discarded and removed; the shopper starts with an empty cart instead of an
// error.
func New(st storage.Store) *Store {
	s := &Store{storage: st}

	var saved []models.CartLine
	err := st.Get(storage.KeyCart, &saved)
	switch {
	case err == nil:
		s.lines = saved
	case errors.Is(err, storage.ErrNotFound):
		// first visit, nothing saved
	default:
		log.Printf("WARNING: failed to parse stored cart, resetting: %v", err)
		_ = st.Remove(storage.KeyCart)
	}
	return s
}

// AddToCart merges qty into an existing (id, size) line or appends a new
// one. Quantities below 1 count as 1. There is no stock-limit enforcement.
func (s *Store) AddToCart(product models.Product, size string, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(product.ID, size); i >= 0 {
		s.lines[i].Quantity += qty
	} else {
		s.lines = append(s.lines, models.CartLine{
			Product:      product,
			Quantity:     qty,
			SelectedSize: size,
		})
	}
	s.persist()
}

// UpdateQuantity sets the quantity on the matching line. A quantity of zero
// or below removes the line; a positive quantity on a missing line is a
// no-op, it never creates one.
func (s *Store) UpdateQuantity(productID string, qty int, size string) {
	if qty <= 0 {
		s.RemoveFromCart(productID, size)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(productID, size); i >= 0 {
		s.lines[i].Quantity = qty
		s.persist()
	}
}

// RemoveFromCart deletes the matching line; a no-op when absent.
func (s *Store) RemoveFromCart(productID string, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(productID, size); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.persist()
	}
}

// Clear empties the cart. Checkout calls this after the order is placed.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Lines returns a snapshot of the current cart lines.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// TotalItems is the sum of quantities across lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of price x quantity across lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// find returns the index of the (id, size) line, or -1. Callers hold s.mu.
func (s *Store) find(productID, size string) int {
	for i, l := range s.lines {
		if l.ID == productID && l.SelectedSize == size {
			return i
		}
	}
	return -1
}

// persist writes the full line list to storage. Callers hold s.mu.
func (s *Store) persist() {
	if err := s.storage.Set(storage.KeyCart, s.lines); err != nil {
		log.Printf("WARNING: failed to persist cart: %v", err)
	}
}
