package routes

import (
	"github.com/gin-gonic/gin"

	"piwkina-shop/auth"
	"piwkina-shop/handlers"
	"piwkina-shop/middleware"
	"piwkina-shop/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, authSvc *auth.Service) {
	r.Use(middleware.Language())

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		public.GET("/content/:page", h.GetContent)
		public.GET("/state-machine", h.GetStateMachineInfo)
		public.GET("/shell", middleware.OptionalAuth(authSvc), h.GetShell)
	}

	// ── Storefront (signed-in shoppers) ────────────────────────────
	shop := r.Group("/api")
	shop.Use(middleware.AuthRequired(authSvc))
	{
		shop.GET("/profile", h.GetProfile)
		shop.POST("/auth/logout", h.Logout)

		shop.GET("/products", h.ListProducts)
		shop.GET("/products/featured", h.ListFeatured)
		shop.GET("/products/:id/quote", h.QuoteProduct)
		shop.GET("/pages/:slug", h.GetPage)
		shop.POST("/contact", h.SendContactMessage)

		shop.GET("/cart", h.GetCart)
		shop.POST("/cart", h.AddToCart)
		shop.DELETE("/cart", h.ClearCart)
		shop.DELETE("/cart/:itemId", h.RemoveFromCart)
		shop.POST("/cart/checkout", h.CheckoutCart)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(authSvc), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.GET("/events", h.AdminEvents)

		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.AdminCreateProduct)
		admin.PUT("/products/:id", h.AdminUpdateProduct)
		admin.PUT("/products/:id/toggle", h.AdminToggleProduct)
		admin.DELETE("/products/:id", h.AdminDeleteProduct)

		admin.GET("/orders", h.AdminGetAllOrders)
		admin.GET("/orders/export", h.AdminExportOrders)
		admin.GET("/orders/:id", h.AdminGetOrderDetail)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)

		admin.GET("/menus", h.AdminListMenus)
		admin.POST("/menus", h.AdminCreateMenu)
		admin.PUT("/menus/:id", h.AdminUpdateMenu)
		admin.PUT("/menus/:id/toggle", h.AdminToggleMenu)
		admin.DELETE("/menus/:id", h.AdminDeleteMenu)

		admin.GET("/pages", h.AdminListPages)
		admin.GET("/pages/slug", h.AdminSlug)
		admin.POST("/pages", h.AdminCreatePage)
		admin.PUT("/pages/:id", h.AdminUpdatePage)
		admin.PUT("/pages/:id/toggle", h.AdminTogglePage)
		admin.DELETE("/pages/:id", h.AdminDeletePage)
	}
}
