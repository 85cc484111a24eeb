package middleware

import (
	"context"
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

	"piwkina-shop/auth"
	"piwkina-shop/models"
)

func newAuth(t *testing.T) *auth.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mw.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return auth.NewService(db, []byte("secret"), "admin@piwkina.ge")
}

func token(t *testing.T, svc *auth.Service, email string) string {
	t.Helper()
	var err error
	if email == svc.AdminEmail() {
		err = svc.Seed(context.Background(), email, "secret1")
	} else {
		_, err = svc.Register(context.Background(), email, "secret1", "")
	}
	require.NoError(t, err)
	_, tok, err := svc.Login(context.Background(), email, "secret1")
	require.NoError(t, err)
	return tok
}

func router(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Language())
	r.GET("/me", AuthRequired(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "role": GetRole(c), "lang": GetLanguage(c)})
	})
	r.GET("/admin", AuthRequired(svc), RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/maybe", OptionalAuth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"signedIn": GetSession(c).State().User != nil})
	})
	return r
}

func do(r *gin.Engine, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	svc := newAuth(t)
	r := router(svc)

	w := do(r, "/me?lang=ka", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "sign_in")
	assert.Contains(t, w.Body.String(), "გთხოვთ")

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)

	tok := token(t, svc, "a@b.ge")
	w = do(r, "/me?lang=ka", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
	assert.Contains(t, w.Body.String(), `"lang":"ka"`)

	assert.Equal(t, http.StatusOK, do(r, "/me?token="+tok, "").Code)
}

func TestRoleRequired(t *testing.T) {
	svc := newAuth(t)
	r := router(svc)

	assert.Equal(t, http.StatusForbidden, do(r, "/admin", token(t, svc, "a@b.ge")).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/admin", token(t, svc, "admin@piwkina.ge")).Code)
}

func TestOptionalAuth(t *testing.T) {
	svc := newAuth(t)
	r := router(svc)

	w := do(r, "/maybe", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signedIn":false`)

	w = do(r, "/maybe", token(t, svc, "a@b.ge"))
	assert.Contains(t, w.Body.String(), `"signedIn":true`)
}
