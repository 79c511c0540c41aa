package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendycorner/storefront-golang/internal/pricing"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, ok := h.Catalog.Get(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if input.Quantity < 1 {
		input.Quantity = 1
	}
	h.Cart.AddToCart(product, input.Size, input.Quantity)

	c.JSON(http.StatusCreated, gin.H{"message": "Added " + product.Name + " to cart"})
}

// UpdateCartItemInput defines the JSON for changing a line's quantity.
// A quantity of zero removes the line.
type UpdateCartItemInput struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.Cart.UpdateQuantity(c.Param("id"), input.Quantity, input.Size)
	h.getCartResponse(c)
}

func (h *Handlers) DeleteCartItem(c *gin.Context) {
	h.Cart.RemoveFromCart(c.Param("id"), c.Query("size"))
	h.getCartResponse(c)
}

func (h *Handlers) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart has been cleared"})
}

func (h *Handlers) GetCart(c *gin.Context) {
	h.getCartResponse(c)
}

// getCartResponse renders the cart with its derived values, recomputed on
// every read.
func (h *Handlers) getCartResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Lines(),
		"totalItems": h.Cart.TotalItems(),
		"summary":    pricing.Compute(h.Cart.Subtotal()),
	})
}
