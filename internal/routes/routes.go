package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/trendycorner/storefront-golang/internal/handlers"
	"github.com/trendycorner/storefront-golang/internal/middleware"
	"github.com/trendycorner/storefront-golang/internal/models"
)

// registerValidations adds the custom binding rules the admin forms use. A
// registration failure would leave those forms silently unvalidated, so it
// takes the server down instead.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Fatalf("Failed to access the binding validator engine")
	}
	err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsValidCategory(fl.Field().String())
	})
	if err != nil {
		log.Fatalf("Failed to register the category validation rule: %v", err)
	}
}

// SetupRouter wires every endpoint of the storefront API. corsOrigin is the
// browser frontend allowed to call us.
func SetupRouter(h *handlers.Handlers, corsOrigin string) *gin.Engine {
	registerValidations()

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Product Browsing (Public) ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/filters", h.GetProductFilters)
		v1.GET("/products/:id", h.GetProduct)

		// --- Cart ---
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddToCart)
		v1.PUT("/cart/items/:id", h.UpdateCartItem)
		v1.DELETE("/cart/items/:id", h.DeleteCartItem)
		v1.DELETE("/cart", h.ClearCart)

		// --- Shopper Auth (Simulated) ---
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/social-login", h.SocialLogin)
		v1.POST("/auth/logout", h.Logout)
		v1.GET("/auth/me", h.GetCurrentUser)

		// --- Checkout Flow ---
		v1.POST("/checkout", h.BeginCheckout)
		v1.GET("/checkout", h.GetCheckout)
		v1.PUT("/checkout/shipping", h.SetShipping)
		v1.POST("/checkout/next", h.CheckoutNext)
		v1.POST("/checkout/back", h.CheckoutBack)
		v1.PUT("/checkout/payment-method", h.SelectPaymentMethod)
		v1.POST("/checkout/payment/login", h.SubmitPaymentLogin)
		v1.POST("/checkout/payment/confirm", h.ConfirmPayment)
		v1.POST("/checkout/order", h.PlaceOrder)

		// --- Order Confirmation ---
		v1.GET("/orders/last", h.GetLastOrder)

		// --- Admin (Dashboard) ---
		v1.POST("/admin/login", h.AdminLogin)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth())
		{
			admin.POST("/logout", h.AdminLogout)
			admin.GET("/stats", h.GetAdminStats)
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
		}
	}

	return router
}
