package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"piwkina-shop/admin"
	"piwkina-shop/i18n"
	"piwkina-shop/models"
)

func (h *Handler) productList(c *gin.Context) []models.Product {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		return []models.Product{}
	}
	return admin.FilterProducts(products, c.Query("search"))
}

// AdminListProducts returns every product, hidden ones included
func (h *Handler) AdminListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		adminError(c, err, "Failed to fetch products")
		return
	}
	filtered := admin.FilterProducts(products, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"count": len(filtered), "products": filtered})
}

// AdminCreateProduct adds a product
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	h.saveProduct(c, "", http.StatusCreated, "Product created successfully")
}

// AdminUpdateProduct edits a product; saving re-activates it
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	h.saveProduct(c, c.Param("id"), http.StatusOK, "Product updated successfully")
}

func (h *Handler) saveProduct(c *gin.Context, id string, status int, message string) {
	var form admin.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		adminError(c, admin.ErrInvalidInput, "Failed to save product")
		return
	}
	saved, err := h.Products.Save(c.Request.Context(), session(c), id, form)
	if err != nil {
		adminError(c, err, "Failed to save product")
		return
	}
	c.JSON(status, gin.H{
		"id":       saved,
		"products": h.productList(c),
		"toast":    i18n.AdminToast("Success", message, false),
	})
}

// AdminToggleProduct flips a product between active and hidden
func (h *Handler) AdminToggleProduct(c *gin.Context) {
	active, err := h.Products.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		adminError(c, err, "Failed to update product status")
		return
	}
	state := "deactivated"
	if active {
		state = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"isActive": active,
		"products": h.productList(c),
		"toast":    i18n.AdminToast("Success", "Product "+state+" successfully", false),
	})
}

// AdminDeleteProduct removes a product once ?confirm=true is given
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		adminError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": h.productList(c),
		"toast":    i18n.AdminToast("Success", "Product deleted successfully", false),
	})
}
