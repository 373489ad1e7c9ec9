package handlers

import (
	"net/http"

	"hantrip/models"
	"hantrip/services/layout"
	"hantrip/services/state"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StateHandler serves the per-visitor shell state: sidebar, search mode,
// selection, route choice and the bottom sheet.
type StateHandler struct {
	StateService state.Service
}

func (h *StateHandler) respond(c *gin.Context, st *state.UIState, err error) {
	if err != nil {
		utils.GetLogger().Error("Failed to update visitor state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update state"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// GetStateHandler handles GET /api/state.
func (h *StateHandler) GetStateHandler(c *gin.Context) {
	st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
	h.respond(c, st, err)
}

// SetSidebarHandler handles PUT /api/state/sidebar.
func (h *StateHandler) SetSidebarHandler(c *gin.Context) {
	var req struct {
		Open *bool `json:"open"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Open == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing open flag"})
		return
	}
	st, err := h.StateService.SetSidebar(c.Request.Context(), visitorID(c), *req.Open)
	h.respond(c, st, err)
}

// ToggleSidebarHandler handles POST /api/state/sidebar/toggle.
func (h *StateHandler) ToggleSidebarHandler(c *gin.Context) {
	st, err := h.StateService.ToggleSidebar(c.Request.Context(), visitorID(c))
	h.respond(c, st, err)
}

// SetSearchModeHandler handles PUT /api/state/search-mode.
func (h *StateHandler) SetSearchModeHandler(c *gin.Context) {
	var req struct {
		Active *bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing active flag"})
		return
	}
	st, err := h.StateService.SetSearchMode(c.Request.Context(), visitorID(c), *req.Active)
	h.respond(c, st, err)
}

// SetSelectionHandler handles PUT /api/state/selection.
func (h *StateHandler) SetSelectionHandler(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sel.Type != models.SelectionPOI && sel.Type != models.SelectionContent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown selection type"})
		return
	}
	st, err := h.StateService.SetSelection(c.Request.Context(), visitorID(c), &sel)
	h.respond(c, st, err)
}

// ClearSelectionHandler handles DELETE /api/state/selection.
func (h *StateHandler) ClearSelectionHandler(c *gin.Context) {
	st, err := h.StateService.ClearSelection(c.Request.Context(), visitorID(c))
	h.respond(c, st, err)
}

// SetRouteHandler handles PUT /api/state/route.
func (h *StateHandler) SetRouteHandler(c *gin.Context) {
	var req struct {
		RouteID string `json:"routeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.StateService.SetRoute(c.Request.Context(), visitorID(c), req.RouteID)
	h.respond(c, st, err)
}

// ClearRouteHandler handles DELETE /api/state/route.
func (h *StateHandler) ClearRouteHandler(c *gin.Context) {
	st, err := h.StateService.ClearRoute(c.Request.Context(), visitorID(c))
	h.respond(c, st, err)
}

// sheetEventRequest is one bottom-sheet gesture event replayed onto the
// stored state machine.
type sheetEventRequest struct {
	Event      string  `json:"event" binding:"required"`
	Y          float64 `json:"y"`
	HalfHeight float64 `json:"halfHeight"`
}

// SheetEventHandler handles POST /api/state/sheet. The client streams gesture
// events (start, move, end, tap, dismiss); the server replays them onto the
// persisted sheet and answers the settled state.
func (h *StateHandler) SheetEventHandler(c *gin.Context) {
	var req sheetEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.StateService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		h.respond(c, nil, err)
		return
	}

	sheet := st.Sheet
	if req.HalfHeight > 0 {
		sheet.HalfHeight = req.HalfHeight
	}

	var tapped bool
	switch req.Event {
	case "start":
		sheet.StartDrag(req.Y)
	case "move":
		sheet.Drag(req.Y)
	case "end":
		sheet.EndDrag()
	case "tap":
		tapped = sheet.TapHandle()
	case "dismiss":
		sheet = *layout.NewSheet(sheet.HalfHeight)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sheet event"})
		return
	}

	st, err = h.StateService.UpdateSheet(c.Request.Context(), visitorID(c), sheet)
	if err != nil {
		h.respond(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": st, "tapped": tapped})
}
