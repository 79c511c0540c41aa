package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/trendycorner/storefront-golang/internal/authstore"
	"github.com/trendycorner/storefront-golang/internal/cart"
	"github.com/trendycorner/storefront-golang/internal/catalog"
	"github.com/trendycorner/storefront-golang/internal/handlers"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/routes"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Storage ---
	// STORE_PATH selects the file-backed store (the browser-local-storage
	// equivalent that survives restarts); empty means in-memory only.
	var store storage.Store
	if path := os.Getenv("STORE_PATH"); path != "" {
		fileStore, err := storage.OpenFile(path)
		if err != nil {
			log.Fatalf("Failed to open store file %s: %v", path, err)
		}
		store = fileStore
		log.Printf("Using file-backed storage at %s", path)
	} else {
		store = storage.NewMemory()
		log.Println("Using in-memory storage (set STORE_PATH to persist across restarts)")
	}

	// --- Stores ---
	productCatalog := catalog.New()
	cartStore := cart.New(store)
	authStore := authstore.New(store, envDuration("AUTH_DELAY_MS", authstore.DefaultDelay))

	// --- Admin Credentials ---
	// The password is hashed once at startup; only the hash is kept.
	adminUsername := envOr("ADMIN_USERNAME", "admin")
	var adminPassword models.Password
	if err := adminPassword.Set(envOr("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	// --- Application Setup ---
	// We inject ALL dependencies into the Handlers struct.
	app := &handlers.Handlers{
		Catalog:             productCatalog,
		Cart:                cartStore,
		Auth:                authStore,
		Storage:             store,
		AdminUsername:       adminUsername,
		AdminPassword:       adminPassword,
		PaymentLoginDelay:   envDuration("PAYMENT_LOGIN_DELAY_MS", 0),
		PaymentConfirmDelay: envDuration("PAYMENT_CONFIRM_DELAY_MS", 0),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, envOr("CORS_ORIGIN", "http://localhost:5173"))

	// --- Start Server ---
	port := envOr("PORT", "8080")
	log.Printf("Starting Trendy Corner storefront API on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration reads a millisecond value; zero or unset returns the fallback.
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		log.Printf("WARNING: ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
