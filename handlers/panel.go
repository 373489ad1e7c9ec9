package handlers

import (
	"net/http"

	"hantrip/services/panel"
	"hantrip/services/route"
	"hantrip/services/state"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PanelHandler serves the side-panel body for a resolved panel type.
type PanelHandler struct {
	PanelService *panel.Service
	StateService state.Service
}

// GetPanelHandler handles GET /api/panel?type=&routeId=. The type is the
// resolver's output; the body is assembled per type.
func (h *PanelHandler) GetPanelHandler(c *gin.Context) {
	logger := utils.GetLogger()
	panelType := c.Query("type")
	lang := requestLang(c)

	switch panelType {
	case "home", "contents", "info":
		c.JSON(http.StatusOK, h.PanelService.StaticNav(panelType, lang))

	case "route":
		st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
		if err != nil {
			logger.Error("Failed to load state for route panel", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route panel"})
			return
		}
		rt := route.ResolveSelected(st.RouteID, c.Query("routeId"))
		if rt == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		c.JSON(http.StatusOK, h.PanelService.RoutePanel(rt))

	case "search":
		st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
		if err != nil {
			logger.Error("Failed to load state for search panel", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search panel"})
			return
		}
		c.JSON(http.StatusOK, h.PanelService.SearchPanel(c.Request.Context(), visitorID(c), st.Selection, lang))

	case "cart":
		c.JSON(http.StatusOK, h.PanelService.CartList(c.Request.Context(), visitorID(c), lang))

	case "maps":
		c.JSON(http.StatusOK, h.PanelService.CompanionList(c.Request.Context(), visitorID(c), lang))

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown panel type"})
	}
}

// DrillDownHandler handles POST /api/panel/drilldown. A related-spot tap
// switches the active selection to that spot's POI.
func (h *PanelHandler) DrillDownHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		POIID string `json:"poiId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := h.PanelService.DrillDown(c.Request.Context(), req.POIID, requestLang(c))
	if err != nil {
		logger.Warn("Drill-down failed", zap.String("poiId", req.POIID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	st, err := h.StateService.SetSelection(c.Request.Context(), visitorID(c), sel)
	if err != nil {
		logger.Error("Failed to store drill-down selection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update selection"})
		return
	}
	c.JSON(http.StatusOK, st)
}
