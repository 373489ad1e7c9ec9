package handlers

import (
	"net/http"

	"hantrip/models"
	"hantrip/services/cart"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the per-visitor trip cart.
type CartHandler struct {
	CartService cart.Service
}

type cartItemRequest struct {
	Type      models.CartItemType `json:"type" binding:"required"`
	Name      string              `json:"name"`
	POIID     string              `json:"poiId"`
	SubName   string              `json:"subName"`
	PackageID string              `json:"packageId"`
}

// item builds the cart item with its derived identity. Returns false for an
// unusable payload.
func (r cartItemRequest) item() (models.CartItem, bool) {
	var ref string
	switch r.Type {
	case models.CartItemPOI:
		ref = r.POIID
	case models.CartItemContent:
		ref = r.SubName
	case models.CartItemPackage:
		ref = r.PackageID
	default:
		return models.CartItem{}, false
	}
	if ref == "" {
		return models.CartItem{}, false
	}
	return models.CartItem{
		ID:        models.CartItemID(r.Type, ref),
		Name:      r.Name,
		Type:      r.Type,
		POIID:     r.POIID,
		SubName:   r.SubName,
		PackageID: r.PackageID,
	}, true
}

// GetCartHandler handles GET /api/cart.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.CartService.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddCartItemHandler handles POST /api/cart.
func (h *CartHandler) AddCartItemHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, ok := req.item()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart item is missing its reference"})
		return
	}

	items, err := h.CartService.Add(c.Request.Context(), visitorID(c), item)
	if err != nil {
		logger.Error("Failed to add cart item", zap.String("itemId", item.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleCartItemHandler handles POST /api/cart/toggle.
func (h *CartHandler) ToggleCartItemHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, ok := req.item()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart item is missing its reference"})
		return
	}

	items, inCart, err := h.CartService.Toggle(c.Request.Context(), visitorID(c), item)
	if err != nil {
		logger.Error("Failed to toggle cart item", zap.String("itemId", item.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "inCart": inCart})
}

// RemoveCartItemHandler handles DELETE /api/cart/:itemId.
func (h *CartHandler) RemoveCartItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	itemID := c.Param("itemId")

	items, err := h.CartService.Remove(c.Request.Context(), visitorID(c), itemID)
	if err != nil {
		logger.Error("Failed to remove cart item", zap.String("itemId", itemID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ClearCartHandler handles DELETE /api/cart.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if err := h.CartService.Clear(c.Request.Context(), visitorID(c)); err != nil {
		logger.Error("Failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
}
