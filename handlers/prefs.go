package handlers

import (
	"net/http"
	"time"

	"hantrip/middleware"
	"hantrip/services/prefs"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PrefsHandler serves per-visitor preferences.
type PrefsHandler struct {
	PrefsService prefs.Service
}

const langCookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// GetPrefsHandler handles GET /api/prefs.
func (h *PrefsHandler) GetPrefsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	p, err := h.PrefsService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Error("Failed to load preferences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePrefsHandler handles PUT /api/prefs. Each field updates independently;
// a language change is mirrored into the language cookie so the next page
// renders in the right locale without a state lookup.
func (h *PrefsHandler) UpdatePrefsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Theme    *string `json:"theme"`
		Language *string `json:"language"`
		Consent  *string `json:"consent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := visitorID(c)

	var (
		p   *prefs.Preferences
		err error
	)
	if req.Theme != nil {
		if *req.Theme != "light" && *req.Theme != "dark" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme"})
			return
		}
		if p, err = h.PrefsService.SetTheme(ctx, id, *req.Theme); err != nil {
			logger.Error("Failed to store theme", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
			return
		}
	}
	if req.Language != nil {
		if *req.Language != "en" && *req.Language != "ko" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown language"})
			return
		}
		if p, err = h.PrefsService.SetLanguage(ctx, id, *req.Language); err != nil {
			logger.Error("Failed to store language", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.LanguageCookie, *req.Language, langCookieMaxAge, "/", "", false, false)
	}
	if req.Consent != nil {
		consent := prefs.Consent(*req.Consent)
		if consent != prefs.ConsentGranted && consent != prefs.ConsentDenied {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown consent value"})
			return
		}
		if p, err = h.PrefsService.SetConsent(ctx, id, consent); err != nil {
			logger.Error("Failed to store consent", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
			return
		}
	}

	if p == nil {
		if p, err = h.PrefsService.Get(ctx, id); err != nil {
			logger.Error("Failed to load preferences", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
			return
		}
	}
	c.JSON(http.StatusOK, p)
}
