package handlers

import "github.com/gin-gonic/gin"

// visitorID pulls the visitor identity set by the session middleware.
func visitorID(c *gin.Context) string {
	v, ok := c.Get("visitorID")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// requestLang pulls the language set by the language middleware.
func requestLang(c *gin.Context) string {
	v, ok := c.Get("lang")
	if !ok {
		return "en"
	}
	lang, _ := v.(string)
	if lang == "" {
		return "en"
	}
	return lang
}
