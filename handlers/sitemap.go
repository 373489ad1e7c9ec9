package handlers

import (
	"net/http"

	"hantrip/cron"
	"hantrip/services/sitemap"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SitemapHandler serves /sitemap.xml from the worker-maintained cache,
// building inline on a cold cache.
type SitemapHandler struct {
	SitemapService *sitemap.Service
}

// GetSitemapHandler handles GET /sitemap.xml.
func (h *SitemapHandler) GetSitemapHandler(c *gin.Context) {
	logger := utils.GetLogger()

	cached, err := utils.GetCacheClient().Get(c.Request.Context(), cron.SitemapCacheKey).Bytes()
	if err == nil {
		c.Data(http.StatusOK, "application/xml; charset=utf-8", cached)
		return
	}
	if err != redis.Nil {
		logger.Warn("Failed to read cached sitemap, rebuilding inline", zap.Error(err))
	}

	out, err := h.SitemapService.Build()
	if err != nil {
		logger.Error("Failed to build sitemap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
