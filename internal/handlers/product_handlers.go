package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trendycorner/storefront-golang/internal/catalog"
)

//
// --- Product Browsing (Public) ---
//

// GetProducts lists products through the filter/sort pipeline. All query
// parameters are optional:
//
//	?category=pants&min_price=1000&max_price=4000&brands=Style+Master,SportMax&in_stock=true&sort=price-low
func (h *Handlers) GetProducts(c *gin.Context) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Sort:     catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured))),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a number"})
			return
		}
		f.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		f.MaxPrice = &v
	}
	if raw := c.Query("brands"); raw != "" {
		f.Brands = strings.Split(raw, ",")
	}
	if raw := c.Query("in_stock"); raw != "" {
		f.InStockOnly = raw == "true" || raw == "1"
	}

	products := h.Catalog.Search(f)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product by id, or a dedicated not-found body. A
// missing product is never an internal error.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductFilters returns the sidebar data for a category: the distinct
// brands and the inclusive price bounds derived from the category's
// products.
func (h *Handlers) GetProductFilters(c *gin.Context) {
	category := c.Query("category")

	brands := h.Catalog.Brands(category)
	min, max, ok := h.Catalog.PriceBounds(category)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"brands": []string{}, "minPrice": 0, "maxPrice": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brands":   brands,
		"minPrice": min,
		"maxPrice": max,
	})
}
