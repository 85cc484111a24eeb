package middleware

import (
	"github.com/gin-gonic/gin"

	"piwkina-shop/i18n"
	"piwkina-shop/models"
)

const languageKey = "lang"

// Language picks the response language from ?lang= or Accept-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLanguage(c *gin.Context) models.Language {
	if v, ok := c.Get(languageKey); ok {
		return v.(models.Language)
	}
	return i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
}
