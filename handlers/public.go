package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"piwkina-shop/auth"
	"piwkina-shop/contact"
	"piwkina-shop/i18n"
	"piwkina-shop/middleware"
	"piwkina-shop/models"
	"piwkina-shop/shell"
	"piwkina-shop/statemachine"
	"piwkina-shop/store"
)

type navLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

var defaultNav = []struct{ key, url string }{
	{"nav.home", "/"},
	{"nav.products", "/products"},
	{"nav.about", "/about"},
	{"nav.contact", "/contact"},
}

// GetShell tells the frame what to render for the caller: a spinner, the
// sign-in prompt or the app with its header.
func (h *Handler) GetShell(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	gate := shell.NewGate(session(c))
	defer gate.Close()

	view := gate.View()
	resp := gin.H{
		"view":           view,
		"language":       lang,
		"languageToggle": i18n.Toggle(lang),
	}
	switch view {
	case shell.ViewLoading:
		resp["message"] = i18n.T(lang, "shell", "loading")
	case shell.ViewSignIn:
		resp["message"] = i18n.T(lang, "shell", "signInPrompt")
		resp["action"] = gin.H{"label": i18n.T(lang, "shell", "signIn"), "href": "/api/auth/login"}
	case shell.ViewApp:
		user := gate.User()
		header, _ := i18n.Page("header", lang)
		resp["user"] = user
		resp["header"] = header
		resp["cartCount"] = h.Carts.For(user.ID).Count()
		resp["isAdmin"] = auth.IsAdminAffordance(user, h.Auth.AdminEmail(), c.Query("path"))
		resp["navigation"] = h.navigation(c, lang)
	}
	c.JSON(http.StatusOK, resp)
}

// navigation uses the active admin-managed menu when there is one.
func (h *Handler) navigation(c *gin.Context, lang models.Language) []navLink {
	items, err := h.Menus.Active(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load navigation menu")
	}
	var nav []navLink
	for _, it := range items {
		nav = append(nav, navLink{Title: it.Title(lang), URL: it.URL})
	}
	if len(nav) == 0 {
		for _, d := range defaultNav {
			nav = append(nav, navLink{Title: i18n.T(lang, "header", d.key), URL: d.url})
		}
	}
	return nav
}

// GetContent returns one page's dictionary in the negotiated language
func (h *Handler) GetContent(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	dict, ok := i18n.Page(c.Param("page"), lang)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown page", "pages": i18n.PageNames()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "page": c.Param("page"), "content": dict})
}

// GetPage returns a published content page by slug
func (h *Handler) GetPage(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	page, err := h.Pages.PublishedBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("failed to load page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slug":    page.Slug,
		"title":   page.Title(lang),
		"content": page.Content(lang),
		"page":    page,
	})
}

// SendContactMessage stores a contact form submission
func (h *Handler) SendContactMessage(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	var form contact.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Contact.Send(c.Request.Context(), middleware.GetUserID(c), form)
	if errors.Is(err, contact.ErrMissingInformation) {
		shopError(c, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "toast": i18n.ToastFor(lang, "messageError", true)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "toast": i18n.ToastFor(lang, "messageSuccess", false), "resetForm": true})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range []models.OrderStatus{models.StatusPending, models.StatusCompleted, models.StatusCancelled} {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "Piwkina.ge Order Lifecycle State Machine",
	})
}
