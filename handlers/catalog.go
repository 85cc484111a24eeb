package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"piwkina-shop/catalog"
	"piwkina-shop/i18n"
	"piwkina-shop/middleware"
	"piwkina-shop/models"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

type categoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func categoryOptions(lang models.Language) []categoryOption {
	opts := []categoryOption{{Value: catalog.CategoryAll, Label: i18n.CategoryName(lang, catalog.CategoryAll)}}
	for _, cat := range models.Categories {
		opts = append(opts, categoryOption{Value: string(cat), Label: i18n.CategoryName(lang, string(cat))})
	}
	return opts
}

// ListProducts returns active products, newest first, filtered by ?search=
// and ?category=. A failed fetch yields an empty list.
func (h *Handler) ListProducts(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch products")
		products = []models.Product{}
	}
	filtered := catalog.Filter(products, lang, c.Query("search"), c.DefaultQuery("category", catalog.CategoryAll))
	c.JSON(http.StatusOK, gin.H{
		"count":      len(filtered),
		"products":   filtered,
		"categories": categoryOptions(lang),
	})
}

// ListFeatured returns the home page's featured products
func (h *Handler) ListFeatured(c *gin.Context) {
	products, err := h.Catalog.Featured(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch featured products")
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// QuoteProduct applies ?delta= to ?weight= and prices the result.
func (h *Handler) QuoteProduct(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	product, err := h.Catalog.Product(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("product_id", c.Param("id")).Msg("failed to load product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	weight, ok := queryFloat(c, "weight")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
		return
	}
	delta, ok := queryFloat(c, "delta")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delta"})
		return
	}
	c.JSON(http.StatusOK, catalog.QuoteFor(product, lang, catalog.StepWeight(weight, delta)))
}

// queryFloat reads an optional numeric query parameter. Absent reads as 0;
// unparsable, NaN and infinite values are rejected.
func queryFloat(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !money.Finite(f) {
		return 0, false
	}
	return f, true
}
