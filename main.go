package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"piwkina-shop/admin"
	"piwkina-shop/auth"
	"piwkina-shop/cart"
	"piwkina-shop/catalog"
	"piwkina-shop/checkout"
	"piwkina-shop/config"
	"piwkina-shop/contact"
	"piwkina-shop/events"
	"piwkina-shop/handlers"
	"piwkina-shop/ids"
	"piwkina-shop/routes"
	"piwkina-shop/store"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg)

	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	localStorage, err := cart.NewSQLStorage(cfg.LocalStoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open cart storage")
	}
	defer localStorage.Close()

	h, authSvc := buildHandler(cfg, db, localStorage)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.Seed(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("failed to seed admin account")
	}
	cancel()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Piwkina.ge Storefront API",
			"version": "1.0.0",
			"store":   cfg.StoreDriver,
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Welcome to the Piwkina.ge storefront API",
			"docs":      "/api/state-machine",
			"health":    "/health",
			"languages": []string{"en", "ka"},
		})
	})

	routes.SetupRoutes(r, h, authSvc)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// buildHandler wires the services. Every backend write is published to the
// admin event hub.
func buildHandler(cfg config.Config, db *gorm.DB, storage cart.Storage) (*handlers.Handler, *auth.Service) {
	hub := events.NewHub(cfg.CORSOrigins...)
	backend := store.Observe(config.NewBackend(cfg, db), hub.Publish)
	gen := ids.New()
	authSvc := auth.NewService(db, cfg.JWTSecret, cfg.AdminEmail)

	return &handlers.Handler{
		Auth:      authSvc,
		Carts:     cart.NewRegistry(storage, gen),
		Catalog:   catalog.NewService(backend),
		Checkout:  checkout.NewService(backend, gen),
		Contact:   contact.NewService(backend, gen),
		Products:  admin.NewProducts(backend, gen),
		Orders:    admin.NewOrders(backend),
		Menus:     admin.NewMenus(backend, gen),
		Pages:     admin.NewPages(backend, gen),
		Dashboard: admin.NewDashboard(backend),
		Hub:       hub,
	}, authSvc
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
