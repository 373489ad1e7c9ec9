package handlers

import (
	"net/http"

	"hantrip/services/cart"
	"hantrip/services/layout"
	"hantrip/services/route"
	"hantrip/services/state"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LayoutHandler resolves the shell layout for the visitor's current state.
type LayoutHandler struct {
	StateService state.Service
	CartService  cart.Service
}

type layoutRequest struct {
	Path string `json:"path" binding:"required"`
	// Intent is the page's declared side-panel intent: default, routes or
	// none. Unknown values degrade to none inside the resolver.
	Intent  string `json:"intent"`
	RouteID string `json:"routeId"`
}

// ResolveLayoutHandler handles POST /api/layout. It combines the request's
// path and intent with the visitor's stored state and answers the resolved
// panel, widths and reflow classes.
func (h *LayoutHandler) ResolveLayoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Error("Failed to load state for layout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve layout"})
		return
	}

	items, err := h.CartService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		// The resolver tolerates a missing cart; log and resolve without it.
		logger.Warn("Failed to load cart for layout", zap.Error(err))
		items = nil
	}

	selected := route.ResolveSelected(st.RouteID, req.RouteID)

	res := layout.Resolve(layout.Input{
		Path:         req.Path,
		SidebarOpen:  st.SidebarOpen,
		SearchMode:   st.SearchMode,
		HasRoute:     selected != nil,
		HasSelection: st.Selection != nil,
		CartHasPOIs:  cart.HasPOIs(items),
		Intent:       layout.PanelWidth(req.Intent),
	})

	body := gin.H{
		"layout":       res,
		"sidebarWidth": layout.SidebarWidth(st.SidebarOpen),
		"panelWidth":   layout.PanelPixelWidth(res.Width),
	}
	if selected != nil {
		body["routeId"] = selected.ID
	}
	c.JSON(http.StatusOK, body)
}
