package handlers

import (
	"sync"
	"time"

	"github.com/trendycorner/storefront-golang/internal/authstore"
	"github.com/trendycorner/storefront-golang/internal/cart"
	"github.com/trendycorner/storefront-golang/internal/catalog"
	"github.com/trendycorner/storefront-golang/internal/checkout"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

// Handlers holds all dependencies for the HTTP layer. The stores are built
// in main and injected here, never reached through globals, so tests can
// stand up an isolated Handlers per case.
type Handlers struct {
	Catalog *catalog.Catalog
	Cart    *cart.Store
	Auth    *authstore.Store
	Storage storage.Store

	// Admin credentials, resolved from the environment in main.
	AdminUsername string
	AdminPassword models.Password

	// Simulated gateway delays; zero selects the package defaults.
	PaymentLoginDelay   time.Duration
	PaymentConfirmDelay time.Duration

	// The storefront is a single-shopper demo: one checkout flow at a
	// time, owned here and serialized by mu.
	mu   sync.Mutex
	flow *checkout.Flow
}
