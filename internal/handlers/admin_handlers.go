package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/trendycorner/storefront-golang/internal/auth"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

//
// --- Admin Dashboard ---
//

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the configured credentials, writes the admin session
// marker to storage and returns a JWT for the dashboard routes.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	match, err := h.AdminPassword.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Credential check failed"})
		return
	}
	if input.Username != h.AdminUsername || !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
		return
	}

	session := models.AdminSession{Username: input.Username, Role: auth.AdminRole}
	if err := h.Storage.Set(storage.KeyAdminUser, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist admin session"})
		return
	}

	token, err := auth.GenerateAdminToken(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"adminUser": session,
	})
}

// AdminLogout drops the session marker. The JWT simply expires.
func (h *Handlers) AdminLogout(c *gin.Context) {
	if err := h.Storage.Remove(storage.KeyAdminUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear admin session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetAdminStats backs the dashboard's stats cards.
func (h *Handlers) GetAdminStats(c *gin.Context) {
	inStock := 0
	for _, p := range h.Catalog.List() {
		if p.InStock {
			inStock++
		}
	}

	stats := gin.H{
		"totalProducts":   h.Catalog.Count(),
		"productsInStock": inStock,
	}

	// The storefront keeps only the most recent order; its totals are the
	// whole of "revenue" here.
	var last models.Order
	if err := h.Storage.Get(storage.KeyLastOrder, &last); err == nil {
		stats["lastOrderNumber"] = last.OrderNumber
		stats["lastOrderTotal"] = last.Total
	}

	c.JSON(http.StatusOK, stats)
}

// ProductForm is the typed admin product form. Category membership is
// checked by the registered "category" validation rule.
type ProductForm struct {
	Name        string   `json:"name" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Category    string   `json:"category" binding:"required,category"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Quantity    int      `json:"quantity" binding:"min=0"`
}

// toProduct builds the catalog record. InStock is derived from the
// submitted quantity, as the original admin form does.
func (f ProductForm) toProduct(id string) models.Product {
	sizes := f.Sizes
	if len(sizes) == 0 {
		sizes = []string{"S", "M", "L", "XL"}
	}
	return models.Product{
		ID:          id,
		Name:        f.Name,
		Brand:       f.Brand,
		Category:    f.Category,
		Price:       f.Price,
		Description: f.Description,
		Image:       f.Image,
		Sizes:       sizes,
		InStock:     f.Quantity > 0,
	}
}

// CreateProduct adds a product with a slug id derived from its name,
// suffixed until free.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product: " + err.Error()})
		return
	}

	id := h.nextProductID(form.Name)
	product := form.toProduct(id)
	if err := h.Catalog.Add(product); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully!",
		"product": product,
	})
}

// UpdateProduct replaces the record wholesale, keeping its id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product: " + err.Error()})
		return
	}

	product := form.toProduct(c.Param("id"))
	if !h.Catalog.Edit(product) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully!",
		"product": product,
	})
}

func (h *Handlers) DeleteProduct(c *gin.Context) {
	if !h.Catalog.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}

// nextProductID slugifies the name and appends a counter until the id is
// free in the catalog.
func (h *Handlers) nextProductID(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "product"
	}
	id := base
	for n := 2; h.Catalog.HasID(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}
