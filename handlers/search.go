package handlers

import (
	"net/http"

	contentRepo "hantrip/database/repository/content"
	poiRepo "hantrip/database/repository/poi"
	"hantrip/models"
	"hantrip/services/search"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler composes the free-text query, hashtags and category toggles
// into a filtered POI list.
type SearchHandler struct {
	POIRepo     poiRepo.POIRepository
	ContentRepo contentRepo.KContentRepository
}

type searchRequest struct {
	Query              string   `json:"query"`
	Focused            bool     `json:"focused"`
	ExplicitCategories []string `json:"categories"`
	SelectedHashtags   []string `json:"hashtags"`
}

// SearchHandler handles POST /api/search.
func (h *SearchHandler) SearchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pois, err := h.POIRepo.GetAll()
	if err != nil {
		logger.Error("Failed to load POIs for search", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search is unavailable"})
		return
	}
	contents, err := h.ContentRepo.GetAll()
	if err != nil {
		logger.Error("Failed to load contents for search", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search is unavailable"})
		return
	}

	var categories []models.Category
	for _, raw := range req.ExplicitCategories {
		cat, parseErr := models.ParseCategory(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		categories = append(categories, cat)
	}

	matched := search.FilterPOIs(pois, contents, search.Filter{
		Query:              req.Query,
		SearchFocused:      req.Focused,
		ExplicitCategories: categories,
		SelectedHashtags:   req.SelectedHashtags,
	})

	parsed := search.Parse(req.Query)
	c.JSON(http.StatusOK, gin.H{
		"pois":               matched,
		"text":               parsed.Text,
		"detectedCategories": parsed.Categories,
		"hashtags":           parsed.Hashtags,
	})
}

// ToggleCategoryHandler handles POST /api/search/toggle-category. The query
// text comes back with the category's #Label token kept in sync.
func (h *SearchHandler) ToggleCategoryHandler(c *gin.Context) {
	var req struct {
		Query      string   `json:"query"`
		Categories []string `json:"categories"`
		Category   string   `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := models.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	var explicit []models.Category
	for _, raw := range req.Categories {
		ec, parseErr := models.ParseCategory(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		explicit = append(explicit, ec)
	}

	query, categories := search.ToggleCategory(req.Query, explicit, cat)
	c.JSON(http.StatusOK, gin.H{"query": query, "categories": categories})
}
