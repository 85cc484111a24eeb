package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"piwkina-shop/admin"
	"piwkina-shop/i18n"
	"piwkina-shop/models"
)

func (h *Handler) menuList(c *gin.Context) []models.MenuItem {
	items, err := h.Menus.List(c.Request.Context())
	if err != nil {
		return []models.MenuItem{}
	}
	return items
}

func (h *Handler) AdminListMenus(c *gin.Context) {
	items, err := h.Menus.List(c.Request.Context())
	if err != nil {
		adminError(c, err, "Failed to fetch menu items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menuItems": items})
}

func (h *Handler) AdminCreateMenu(c *gin.Context) {
	h.saveMenu(c, "", http.StatusCreated, "Menu item created successfully")
}

func (h *Handler) AdminUpdateMenu(c *gin.Context) {
	h.saveMenu(c, c.Param("id"), http.StatusOK, "Menu item updated successfully")
}

func (h *Handler) saveMenu(c *gin.Context, id string, status int, message string) {
	var form admin.MenuForm
	if err := c.ShouldBindJSON(&form); err != nil {
		adminError(c, admin.ErrInvalidInput, "Failed to save menu item")
		return
	}
	saved, err := h.Menus.Save(c.Request.Context(), session(c), id, form)
	if err != nil {
		adminError(c, err, "Failed to save menu item")
		return
	}
	c.JSON(status, gin.H{
		"id":        saved,
		"menuItems": h.menuList(c),
		"toast":     i18n.AdminToast("Success", message, false),
	})
}

func (h *Handler) AdminToggleMenu(c *gin.Context) {
	active, err := h.Menus.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		adminError(c, err, "Failed to update menu item status")
		return
	}
	state := "deactivated"
	if active {
		state = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"isActive":  active,
		"menuItems": h.menuList(c),
		"toast":     i18n.AdminToast("Success", "Menu item "+state+" successfully", false),
	})
}

func (h *Handler) AdminDeleteMenu(c *gin.Context) {
	if err := h.Menus.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		adminError(c, err, "Failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"menuItems": h.menuList(c),
		"toast":     i18n.AdminToast("Success", "Menu item deleted successfully", false),
	})
}
