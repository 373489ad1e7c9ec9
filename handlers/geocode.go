package handlers

import (
	"errors"
	"net/http"

	"hantrip/services/geocode"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler proxies address lookups to Naver.
type GeocodeHandler struct {
	Geocoder *geocode.Client
}

// GeocodeAddressHandler handles GET /api/geocode?address=.
func (h *GeocodeHandler) GeocodeAddressHandler(c *gin.Context) {
	logger := utils.GetLogger()

	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing address parameter"})
		return
	}

	res, err := h.Geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		var upstream *geocode.UpstreamError
		switch {
		case errors.Is(err, geocode.ErrMissingCredentials):
			logger.Error("Geocoding credentials are not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Geocoding is not configured"})
		case errors.Is(err, geocode.ErrNoCoordinates):
			c.JSON(http.StatusNotFound, gin.H{"error": "No coordinates found for address"})
		case errors.As(err, &upstream):
			c.JSON(upstream.Status, gin.H{"error": "Geocoding failed upstream"})
		default:
			logger.Error("Geocoding failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Geocoding failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"lat":     res.Lat,
		"lng":     res.Lng,
		"address": res.Address,
	})
}
