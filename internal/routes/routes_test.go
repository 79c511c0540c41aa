package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendycorner/storefront-golang/internal/authstore"
	"github.com/trendycorner/storefront-golang/internal/cart"
	"github.com/trendycorner/storefront-golang/internal/catalog"
	"github.com/trendycorner/storefront-golang/internal/handlers"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := storage.NewMemory()

	var adminPassword models.Password
	require.NoError(t, adminPassword.Set("admin123"))

	h := &handlers.Handlers{
		Catalog:             catalog.New(),
		Cart:                cart.New(mem),
		Auth:                authstore.New(mem, time.Millisecond),
		Storage:             mem,
		AdminUsername:       "admin",
		AdminPassword:       adminPassword,
		PaymentLoginDelay:   time.Millisecond,
		PaymentConfirmDelay: time.Millisecond,
	}
	return SetupRouter(h, "http://localhost:5173")
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestProductListingAndDetail(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/products?category=pants&brands=Style+Master", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = doJSON(t, router, http.MethodGet, "/v1/products/p2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/products/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/cart/items",
		gin.H{"productId": "t1", "size": "M", "quantity": 2}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown product.
	w = doJSON(t, router, http.MethodPost, "/v1/cart/items", gin.H{"productId": "ghost"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/cart", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["totalItems"])

	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2598.0, summary["subtotal"])
	assert.Equal(t, 100.0, summary["deliveryFee"])

	// Quantity zero removes the line.
	w = doJSON(t, router, http.MethodPut, "/v1/cart/items/t1", gin.H{"quantity": 0, "size": "M"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(0), body["totalItems"])
}

func TestCheckoutEmptyCartBypassed(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/checkout", nil, "")
	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["emptyCart"])
}

func TestCheckoutHappyPathCashOnDelivery(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/cart/items",
		gin.H{"productId": "s1", "quantity": 1}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/v1/checkout", nil, "").Code)

	shipping := gin.H{
		"firstName": "Asha", "lastName": "Shrestha", "address": "12 Durbar Marg",
		"city": "Kathmandu", "state": "Bagmati", "zipCode": "44600",
		"country": "Nepal", "email": "asha@example.com", "phone": "9800000000",
	}
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/v1/checkout/shipping", shipping, "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/v1/checkout/next", nil, "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/v1/checkout/payment-method",
		gin.H{"method": "cash-on-delivery"}, "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/v1/checkout/next", nil, "").Code)

	w = doJSON(t, router, http.MethodPost, "/v1/checkout/order", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// The confirmation view can read the order back once.
	w = doJSON(t, router, http.MethodGet, "/v1/orders/last", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The cart was cleared by order placement.
	w = doJSON(t, router, http.MethodGet, "/v1/cart", nil, "")
	body := decode(t, w)
	assert.Equal(t, float64(0), body["totalItems"])
}

func TestLastOrderWithoutCheckout(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/v1/orders/last", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopperAuthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// No user yet.
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, "").Code)

	// Bad credentials fail validation, not the request.
	w := doJSON(t, router, http.MethodPost, "/v1/auth/login",
		gin.H{"email": "bad", "password": "12345"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/auth/login",
		gin.H{"email": "shopper@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, "").Code)
}

func TestAdminFlow(t *testing.T) {
	router := newTestRouter(t)

	// Admin routes are gated.
	assert.Equal(t, http.StatusUnauthorized,
		doJSON(t, router, http.MethodGet, "/v1/admin/stats", nil, "").Code)

	// Wrong password.
	w := doJSON(t, router, http.MethodPost, "/v1/admin/login",
		gin.H{"username": "admin", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/admin/login",
		gin.H{"username": "admin", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	// Invalid category is rejected at the boundary.
	w = doJSON(t, router, http.MethodPost, "/v1/admin/products",
		gin.H{"name": "Wool Hat", "brand": "Trendy Corner", "category": "hats", "price": 999, "quantity": 5}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/v1/admin/products",
		gin.H{"name": "Wool Tee", "brand": "Trendy Corner", "category": "tshirts", "price": 999, "quantity": 5}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	product, _ := decode(t, w)["product"].(map[string]any)
	assert.Equal(t, "wool-tee", product["id"])
	assert.Equal(t, true, product["inStock"])

	// The new product is browsable.
	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodGet, "/v1/products/wool-tee", nil, "").Code)

	// Stats see it too.
	w = doJSON(t, router, http.MethodGet, "/v1/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(13), decode(t, w)["totalProducts"])

	// Delete it again.
	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodDelete, "/v1/admin/products/wool-tee", nil, token).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodGet, "/v1/products/wool-tee", nil, "").Code)
}
