package handlers

import (
	"net/http"

	poiRepo "hantrip/database/repository/poi"
	"hantrip/models"
	"hantrip/services/cart"
	"hantrip/services/maps"
	"hantrip/services/state"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MapsHandler serves the provider-agnostic map view.
type MapsHandler struct {
	Adapters     map[string]maps.Adapter
	POIRepo      poiRepo.POIRepository
	CartService  cart.Service
	StateService state.Service
}

type mapViewRequest struct {
	Provider     string          `json:"provider"`
	Center       models.GeoPoint `json:"center"`
	Zoom         int             `json:"zoom"`
	RouteEnabled bool            `json:"routeEnabled"`
}

// MapViewHandler handles POST /api/maps/view. It assembles markers, numbered
// cart pins and the cart polyline for the requested provider.
func (h *MapsHandler) MapViewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req mapViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	adapter, ok := h.Adapters[req.Provider]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown map provider"})
		return
	}

	pois, err := h.POIRepo.GetAll()
	if err != nil {
		logger.Error("Failed to load POIs for map view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build map view"})
		return
	}

	st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Error("Failed to load state for map view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build map view"})
		return
	}

	items, err := h.CartService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Warn("Failed to load cart for map view", zap.Error(err))
		items = nil
	}

	cartOrder := make(map[string]int)
	for i, id := range cart.POIIDs(items) {
		cartOrder[id] = i + 1
	}

	view := adapter.BuildView(maps.ViewInput{
		Center:       req.Center,
		Zoom:         req.Zoom,
		POIs:         pois,
		CartOrder:    cartOrder,
		HasSelection: st.Selection != nil,
		RouteEnabled: req.RouteEnabled,
		Lang:         requestLang(c),
	})
	c.JSON(http.StatusOK, view)
}

// MapReadyHandler handles GET /api/maps/ready?provider=. It probes the
// provider SDK and answers 503 once the bounded retry budget is spent.
func (h *MapsHandler) MapReadyHandler(c *gin.Context) {
	adapter, ok := h.Adapters[c.Query("provider")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown map provider"})
		return
	}
	if err := adapter.Ready(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Map SDK is unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

// MarkerClickHandler handles POST /api/maps/marker-click. A resolvable marker
// becomes the active selection.
func (h *MapsHandler) MarkerClickHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Provider  string `json:"provider"`
		IDOrTitle string `json:"idOrTitle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	adapter, ok := h.Adapters[req.Provider]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown map provider"})
		return
	}

	pois, err := h.POIRepo.GetAll()
	if err != nil {
		logger.Error("Failed to load POIs for marker click", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve marker"})
		return
	}

	sel := adapter.ResolveMarkerClick(req.IDOrTitle, pois, requestLang(c))
	if sel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Marker not found"})
		return
	}

	st, err := h.StateService.SetSelection(c.Request.Context(), visitorID(c), sel)
	if err != nil {
		logger.Error("Failed to store marker selection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update selection"})
		return
	}
	c.JSON(http.StatusOK, st)
}
