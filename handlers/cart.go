package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"piwkina-shop/cart"
	"piwkina-shop/catalog"
	"piwkina-shop/checkout"
	"piwkina-shop/i18n"
	"piwkina-shop/middleware"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

type AddToCartRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	WeightKg  float64 `json:"weightKg"`
}

func cartView(s *cart.Store) gin.H {
	subtotal := s.Subtotal()
	return gin.H{
		"items":       s.Items(),
		"count":       s.Count(),
		"subtotal":    subtotal,
		"deliveryFee": money.DeliveryFee,
		"grandTotal":  money.Sum(subtotal, money.DeliveryFee),
	}
}

// GetCart returns the caller's cart with totals
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": cartView(h.cartFor(c))})
}

// AddToCart prices the product at the chosen weight and appends a line
func (h *Handler) AddToCart(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Catalog.Product(c.Request.Context(), req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to load product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	s := h.cartFor(c)
	item, err := s.Add(catalog.NewCartItem(product, lang, req.WeightKg))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	toast := i18n.ToastFor(lang, "addedToCart", false)
	toast.Description = item.Name
	c.JSON(http.StatusCreated, gin.H{"item": item, "cart": cartView(s), "toast": toast})
}

// RemoveFromCart drops one line; unknown ids leave the cart unchanged
func (h *Handler) RemoveFromCart(c *gin.Context) {
	s := h.cartFor(c)
	if err := s.Remove(c.Param("itemId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cartView(s)})
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	s := h.cartFor(c)
	if err := s.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cartView(s)})
}

// CheckoutCart places the cart as a pending order
func (h *Handler) CheckoutCart(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	var info checkout.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := h.cartFor(c)
	order, err := h.Checkout.Submit(c.Request.Context(), session(c), s, info)
	if err != nil {
		shopError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":     order,
		"cart":      cartView(s),
		"toast":     i18n.ToastFor(lang, "orderSuccess", false),
		"resetForm": true,
	})
}
