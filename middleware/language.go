package middleware

import (
	"github.com/gin-gonic/gin"
)

// LanguageCookie mirrors the visitor's language preference so pages render in
// the right locale before any state lookup.
const LanguageCookie = "hantrip_lang"

// LanguageMiddleware puts the request language into the context under "lang".
// Only en and ko are served; anything else falls back to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang, _ = c.Cookie(LanguageCookie)
		}
		if lang != "en" && lang != "ko" {
			lang = "en"
		}
		c.Set("lang", lang)
		c.Next()
	}
}
