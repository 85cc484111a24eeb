package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"piwkina-shop/admin"
	"piwkina-shop/i18n"
	"piwkina-shop/models"
)

func (h *Handler) pageList(c *gin.Context) []models.Page {
	pages, err := h.Pages.List(c.Request.Context())
	if err != nil {
		return []models.Page{}
	}
	return pages
}

func (h *Handler) AdminListPages(c *gin.Context) {
	pages, err := h.Pages.List(c.Request.Context())
	if err != nil {
		adminError(c, err, "Failed to fetch pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(pages), "pages": pages})
}

// AdminSlug previews the slug the page form derives from a title
func (h *Handler) AdminSlug(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slug": admin.Slugify(c.Query("title"))})
}

func (h *Handler) AdminCreatePage(c *gin.Context) {
	h.savePage(c, "", http.StatusCreated, "Page created successfully")
}

func (h *Handler) AdminUpdatePage(c *gin.Context) {
	h.savePage(c, c.Param("id"), http.StatusOK, "Page updated successfully")
}

func (h *Handler) savePage(c *gin.Context, id string, status int, message string) {
	var form admin.PageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		adminError(c, admin.ErrInvalidInput, "Failed to save page")
		return
	}
	saved, err := h.Pages.Save(c.Request.Context(), session(c), id, form)
	if err != nil {
		adminError(c, err, "Failed to save page")
		return
	}
	c.JSON(status, gin.H{
		"id":    saved,
		"pages": h.pageList(c),
		"toast": i18n.AdminToast("Success", message, false),
	})
}

func (h *Handler) AdminTogglePage(c *gin.Context) {
	published, err := h.Pages.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		adminError(c, err, "Failed to update page status")
		return
	}
	state := "unpublished"
	if published {
		state = "published"
	}
	c.JSON(http.StatusOK, gin.H{
		"isPublished": published,
		"pages":       h.pageList(c),
		"toast":       i18n.AdminToast("Success", "Page "+state+" successfully", false),
	})
}

func (h *Handler) AdminDeletePage(c *gin.Context) {
	if err := h.Pages.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		adminError(c, err, "Failed to delete page")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pages": h.pageList(c),
		"toast": i18n.AdminToast("Success", "Page deleted successfully", false),
	})
}
