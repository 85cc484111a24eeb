package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"piwkina-shop/admin"
	"piwkina-shop/auth"
	"piwkina-shop/cart"
	"piwkina-shop/catalog"
	"piwkina-shop/checkout"
	"piwkina-shop/contact"
	"piwkina-shop/events"
	"piwkina-shop/i18n"
	"piwkina-shop/middleware"
	"piwkina-shop/statemachine"
	"piwkina-shop/store"
)

// Handler carries the services every route talks to.
type Handler struct {
	Auth      *auth.Service
	Carts     *cart.Registry
	Catalog   *catalog.Service
	Checkout  *checkout.Service
	Contact   *contact.Service
	Products  *admin.Products
	Orders    *admin.Orders
	Menus     *admin.Menus
	Pages     *admin.Pages
	Dashboard *admin.Dashboard
	Hub       *events.Hub
}

// session returns the caller's session; AuthRequired guarantees one.
func session(c *gin.Context) *auth.Session {
	return middleware.GetSession(c)
}

func (h *Handler) cartFor(c *gin.Context) *cart.Store {
	return h.Carts.For(middleware.GetUserID(c))
}

// adminError maps a failed back-office operation to a status and an English
// toast. failure is the description shown for unexpected errors.
func adminError(c *gin.Context, err error, failure string) {
	status := http.StatusInternalServerError
	toast := i18n.AdminToast("Error", failure, true)
	switch {
	case errors.Is(err, admin.ErrMissingInformation):
		status = http.StatusBadRequest
		toast = i18n.AdminToast("Missing Information", "Please fill in all required fields", true)
	case errors.Is(err, admin.ErrInvalidInput):
		status = http.StatusBadRequest
		toast = i18n.AdminToast("Invalid Information", err.Error(), true)
	case errors.Is(err, admin.ErrNotConfirmed):
		status = http.StatusPreconditionRequired
		toast = i18n.AdminToast("Confirmation Required", "Repeat the request with confirm=true to delete", true)
	case errors.Is(err, statemachine.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "toast": toast})
}

// shopError maps checkout and storefront failures to localized toasts.
func shopError(c *gin.Context, err error) {
	lang := middleware.GetLanguage(c)
	status, key := http.StatusInternalServerError, "orderError"
	switch {
	case errors.Is(err, checkout.ErrMissingInformation), errors.Is(err, contact.ErrMissingInformation):
		status, key = http.StatusBadRequest, "missingInfo"
	case errors.Is(err, checkout.ErrEmptyCart):
		status, key = http.StatusBadRequest, "emptyCart"
	case errors.Is(err, checkout.ErrSubmitting):
		status, key = http.StatusConflict, "orderInFlight"
	}
	c.JSON(status, gin.H{"error": err.Error(), "toast": i18n.ToastFor(lang, key, true)})
}
