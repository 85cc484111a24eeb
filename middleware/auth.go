package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"piwkina-shop/auth"
	"piwkina-shop/i18n"
	"piwkina-shop/models"
)

const (
	sessionKey = "session"
	userIDKey  = "userID"
	emailKey   = "email"
	roleKey    = "role"
)

// bearerToken reads "Authorization: Bearer <token>". Browsers cannot set
// headers on websocket upgrades, so a token query parameter is accepted too.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}

func restore(c *gin.Context, svc *auth.Service) (*auth.Session, error) {
	session := svc.NewSession()
	err := session.Restore(c.Request.Context(), bearerToken(c))
	c.Set(sessionKey, session)
	if err != nil {
		return session, err
	}
	user := session.State().User
	c.Set(userIDKey, user.ID)
	c.Set(emailKey, user.Email)
	c.Set(roleKey, string(user.Role))
	return session, nil
}

// AuthRequired resolves the caller's session from the bearer token and
// rejects the request with a sign-in prompt when there is none.
func AuthRequired(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := restore(c, svc); err != nil {
			lang := GetLanguage(c)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"view":  "sign_in",
				"toast": i18n.Toast{Title: i18n.T(lang, "shell", "signInPrompt")},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves the session when a token is present and lets the
// request through either way.
func OptionalAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		restore(c, svc)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(roleKey)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.UserRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// GetSession returns the session resolved for this request, or nil.
func GetSession(c *gin.Context) *auth.Session {
	val, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	return val.(*auth.Session)
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString(roleKey))
}
