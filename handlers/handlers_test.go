package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"piwkina-shop/admin"
	"piwkina-shop/auth"
	"piwkina-shop/cart"
	"piwkina-shop/catalog"
	"piwkina-shop/checkout"
	"piwkina-shop/contact"
	"piwkina-shop/events"
	"piwkina-shop/handlers"
	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/routes"
	"piwkina-shop/store"
)

const adminEmail = "admin@piwkina.ge"

type app struct {
	t       *testing.T
	router  *gin.Engine
	backend store.Backend
	hub     *events.Hub
}

func newApp(t *testing.T) *app {
	t.Helper()
	return newAppWithAdmin(t, "admin-pass")
}

// newAppWithAdmin seeds the admin account with password; an empty password
// leaves the service without one, as the default configuration does.
func newAppWithAdmin(t *testing.T, password string) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "users.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	hub := events.NewHub()
	backend := store.Observe(store.NewMemoryBackend(), hub.Publish)
	gen := ids.New()
	authSvc := auth.NewService(db, []byte("test-secret"), adminEmail)
	require.NoError(t, authSvc.Seed(context.Background(), adminEmail, password))

	h := &handlers.Handler{
		Auth:      authSvc,
		Carts:     cart.NewRegistry(cart.NewMemoryStorage(), gen),
		Catalog:   catalog.NewService(backend),
		Checkout:  checkout.NewService(backend, gen),
		Contact:   contact.NewService(backend, gen),
		Products:  admin.NewProducts(backend, gen),
		Orders:    admin.NewOrders(backend),
		Menus:     admin.NewMenus(backend, gen),
		Pages:     admin.NewPages(backend, gen),
		Dashboard: admin.NewDashboard(backend),
		Hub:       hub,
	}
	r := gin.New()
	routes.SetupRoutes(r, h, authSvc)
	return &app{t: t, router: r, backend: backend, hub: hub}
}

func (a *app) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (a *app) login(email, password string) string {
	a.t.Helper()
	w, body := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return body["token"].(string)
}

func (a *app) register(email string) string {
	a.t.Helper()
	w, body := a.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": email, "password": "secret1"})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return body["token"].(string)
}

func toastTitle(body map[string]any) string {
	toast, _ := body["toast"].(map[string]any)
	title, _ := toast["title"].(string)
	return title
}

func TestShellGate(t *testing.T) {
	a := newApp(t)

	_, body := a.do(http.MethodGet, "/api/shell", "", nil)
	assert.Equal(t, "sign_in", body["view"])

	shopper := a.register("nino@example.ge")
	_, body = a.do(http.MethodGet, "/api/shell?lang=ka", shopper, nil)
	assert.Equal(t, "app", body["view"])
	assert.Equal(t, "ka", body["language"])
	assert.Equal(t, "en", body["languageToggle"])
	assert.Equal(t, false, body["isAdmin"])
	assert.EqualValues(t, 0, body["cartCount"])
	nav := body["navigation"].([]any)
	require.Len(t, nav, 4)
	assert.Equal(t, "მთავარი", nav[0].(map[string]any)["title"])

	_, body = a.do(http.MethodGet, "/api/shell?path=/admin", shopper, nil)
	assert.Equal(t, true, body["isAdmin"])

	adminToken := a.login(adminEmail, "admin-pass")
	_, body = a.do(http.MethodGet, "/api/shell", adminToken, nil)
	assert.Equal(t, true, body["isAdmin"])
}

func TestStorefrontRequiresSession(t *testing.T) {
	a := newApp(t)
	w, body := a.do(http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "sign_in", body["view"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	a := newApp(t)
	shopper := a.register("nino@example.ge")
	w, _ := a.do(http.MethodGet, "/api/admin/dashboard", shopper, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = a.do(http.MethodGet, "/api/admin/dashboard", a.login(adminEmail, "admin-pass"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminEmailCannotBeSelfRegistered(t *testing.T) {
	a := newAppWithAdmin(t, "")

	w, body := a.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": adminEmail, "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Nil(t, body["token"])

	w, _ = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": adminEmail, "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	shopper := a.register("nino@example.ge")
	w, _ = a.do(http.MethodGet, "/api/admin/dashboard", shopper, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestShopAndFulfilOrder(t *testing.T) {
	a := newApp(t)
	adminToken := a.login(adminEmail, "admin-pass")
	shopper := a.register("nino@example.ge")

	changes, cancel := a.hub.Subscribe(32)
	defer cancel()

	// admin adds a product
	w, body := a.do(http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"nameEn": "Roasted Piglet", "nameKa": "შემწვარი გოჭი", "pricePerKg": "40", "category": "main",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := body["id"].(string)
	assert.Equal(t, "Success", toastTitle(body))
	assert.Len(t, body["products"], 1)

	w, body = a.do(http.MethodPost, "/api/admin/products", adminToken, gin.H{"nameEn": "No price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing Information", toastTitle(body))

	// shopper browses and fills the cart
	_, body = a.do(http.MethodGet, "/api/products?search=piglet", shopper, nil)
	assert.EqualValues(t, 1, body["count"])
	_, body = a.do(http.MethodGet, "/api/products?category=special", shopper, nil)
	assert.EqualValues(t, 0, body["count"])

	_, body = a.do(http.MethodGet, "/api/products/"+productID+"/quote?weight=1&delta=0.5", shopper, nil)
	assert.EqualValues(t, 1.5, body["weightKg"])
	assert.EqualValues(t, 60, body["totalPrice"])

	for _, q := range []string{"weight=1e400", "weight=NaN", "weight=-Inf", "weight=abc", "weight=1&delta=Inf"} {
		w, _ = a.do(http.MethodGet, "/api/products/"+productID+"/quote?"+q, shopper, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	w, body = a.do(http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"nameEn": "Infinite", "nameKa": "უსასრულო", "pricePerKg": "Inf",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Information", toastTitle(body))
	_, body = a.do(http.MethodGet, "/api/admin/products", adminToken, nil)
	assert.EqualValues(t, 1, body["count"])

	w, body = a.do(http.MethodPost, "/api/cart", shopper, gin.H{"productId": productID, "weightKg": 1.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := body["item"].(map[string]any)
	assert.EqualValues(t, 60, item["totalPrice"])

	// validation happens before anything is written
	w, body = a.do(http.MethodPost, "/api/cart/checkout?lang=ka", shopper, gin.H{"phone": "123", "address": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ნაკლული ინფორმაცია", toastTitle(body))

	w, body = a.do(http.MethodPost, "/api/cart/checkout", shopper, gin.H{
		"name": "Nino", "phone": "555123456", "address": "Rustaveli 1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Order placed successfully!", toastTitle(body))
	assert.Equal(t, true, body["resetForm"])
	order := body["order"].(map[string]any)
	orderID := order["id"].(string)
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 60, order["totalAmount"])

	_, body = a.do(http.MethodGet, "/api/cart", shopper, nil)
	assert.EqualValues(t, 0, body["cart"].(map[string]any)["count"])

	w, body = a.do(http.MethodPost, "/api/cart/checkout", shopper, gin.H{
		"name": "Nino", "phone": "555123456", "address": "Rustaveli 1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Empty Cart", toastTitle(body))

	// admin works the order
	_, body = a.do(http.MethodGet, "/api/admin/orders?status=pending", adminToken, nil)
	assert.EqualValues(t, 1, body["count"])

	_, body = a.do(http.MethodGet, "/api/admin/orders/"+orderID, adminToken, nil)
	detail := body["order"].(map[string]any)
	items := detail["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].(map[string]any)["quantity"])
	assert.EqualValues(t, 1.5, items[0].(map[string]any)["weightKg"])

	w, _ = a.do(http.MethodPut, "/api/admin/orders/"+orderID+"/status", adminToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = a.do(http.MethodPut, "/api/admin/orders/"+orderID+"/status", adminToken, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, w.Code)

	_, body = a.do(http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 1, stats["totalOrders"])
	assert.EqualValues(t, 0, stats["pendingOrders"])
	assert.EqualValues(t, 60, stats["totalRevenue"])

	w, _ = a.do(http.MethodGet, "/api/admin/orders/export", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	// hidden products leave the catalog
	_, _ = a.do(http.MethodPut, "/api/admin/products/"+productID+"/toggle", adminToken, nil)
	_, body = a.do(http.MethodGet, "/api/products/featured", shopper, nil)
	assert.EqualValues(t, 0, body["count"])

	w, _ = a.do(http.MethodDelete, "/api/admin/products/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	w, body = a.do(http.MethodDelete, "/api/admin/products/"+productID+"?confirm=true", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["products"])

	assert.NotEmpty(t, changes)
	first := <-changes
	assert.Equal(t, store.Change{Collection: store.Products, Op: store.OpCreate, ID: productID}, first)
}

func TestPagesMenusAndContact(t *testing.T) {
	a := newApp(t)
	adminToken := a.login(adminEmail, "admin-pass")
	shopper := a.register("nino@example.ge")

	_, body := a.do(http.MethodGet, "/api/admin/pages/slug?title=About%20Us!", adminToken, nil)
	assert.Equal(t, "about-us", body["slug"])

	w, _ := a.do(http.MethodPost, "/api/admin/pages", adminToken, gin.H{
		"titleEn": "About Us!", "titleKa": "ჩვენ შესახებ", "contentEn": "Since 2020", "contentKa": "2020 წლიდან",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	_, body = a.do(http.MethodGet, "/api/pages/about-us?lang=ka", shopper, nil)
	assert.Equal(t, "ჩვენ შესახებ", body["title"])
	assert.Equal(t, "2020 წლიდან", body["content"])

	w, _ = a.do(http.MethodGet, "/api/pages/nowhere", shopper, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = a.do(http.MethodPost, "/api/admin/menus", adminToken, gin.H{"titleEn": "Shop", "titleKa": "მაღაზია", "url": "/products"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	_, body = a.do(http.MethodGet, "/api/shell", shopper, nil)
	nav := body["navigation"].([]any)
	require.Len(t, nav, 1)
	assert.Equal(t, "Shop", nav[0].(map[string]any)["title"])

	w, body = a.do(http.MethodPost, "/api/contact", shopper, gin.H{"name": "Nino", "email": "n@b.ge"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing Information", toastTitle(body))
	w, body = a.do(http.MethodPost, "/api/contact", shopper, gin.H{"name": "Nino", "email": "n@b.ge", "message": "Hello"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message sent successfully!", toastTitle(body))

	_, body = a.do(http.MethodGet, "/api/content/footer?lang=ka", shopper, nil)
	assert.Equal(t, "თბილისი, საქართველო", body["content"].(map[string]any)["address"])
}

func TestLogoutRevokesToken(t *testing.T) {
	a := newApp(t)
	shopper := a.register("nino@example.ge")

	w, _ := a.do(http.MethodPost, "/api/auth/logout", shopper, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = a.do(http.MethodGet, "/api/profile", shopper, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
