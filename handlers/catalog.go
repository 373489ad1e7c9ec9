package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"hantrip/cron"
	artistRepo "hantrip/database/repository/artist"
	contentRepo "hantrip/database/repository/content"
	poiRepo "hantrip/database/repository/poi"
	packageRepo "hantrip/database/repository/travelpackage"
	"hantrip/models"
	"hantrip/services/route"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// popularityCache is the slice of the Redis client the catalog reads the
// worker-refreshed popularity entries through.
type popularityCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// CatalogHandler serves the read-only content catalog: POIs, K-contents,
// travel packages, artists and the static route catalog.
type CatalogHandler struct {
	POIRepo     poiRepo.POIRepository
	ContentRepo contentRepo.KContentRepository
	PackageRepo packageRepo.PackageRepository
	ArtistRepo  artistRepo.ArtistRepository
	Cache       popularityCache
}

// GetPOIsHandler handles GET /api/pois.
func (h *CatalogHandler) GetPOIsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	pois, err := h.POIRepo.GetAll()
	if err != nil {
		logger.Error("Failed to load POIs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load places"})
		return
	}
	c.JSON(http.StatusOK, pois)
}

// GetPOIByIDHandler handles GET /api/pois/:id.
func (h *CatalogHandler) GetPOIByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	poi, err := h.POIRepo.GetByID(id)
	if err != nil {
		logger.Error("Failed to load POI", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load place"})
		return
	}
	if poi == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, poi)
}

// GetContentsHandler handles GET /api/contents with optional subName, poiId
// and category filters.
func (h *CatalogHandler) GetContentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		contents []models.KContent
		err      error
	)
	switch {
	case c.Query("subName") != "":
		contents, err = h.ContentRepo.GetBySubName(c.Query("subName"))
	case c.Query("poiId") != "":
		contents, err = h.ContentRepo.GetByPOI(c.Query("poiId"))
	case c.Query("category") != "":
		cat, parseErr := models.ParseCategory(c.Query("category"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		if cached, ok := h.popularContents(c.Request.Context(), cat); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
		contents, err = h.ContentRepo.GetByCategory(cat)
	default:
		contents, err = h.ContentRepo.GetAll()
	}
	if err != nil {
		logger.Error("Failed to load contents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contents"})
		return
	}
	c.JSON(http.StatusOK, contents)
}

// popularContents serves a category straight from the worker-refreshed
// popularity cache, already sorted. Any miss or bad entry falls through to
// Mongo.
func (h *CatalogHandler) popularContents(ctx context.Context, cat models.Category) ([]models.KContent, bool) {
	if h.Cache == nil {
		return nil, false
	}
	raw, err := h.Cache.Get(ctx, cron.PopularityCacheKey(cat)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Failed to read popularity cache", zap.String("category", string(cat)), zap.Error(err))
		}
		return nil, false
	}
	var contents []models.KContent
	if err := json.Unmarshal(raw, &contents); err != nil {
		utils.GetLogger().Warn("Corrupt popularity cache entry", zap.String("category", string(cat)), zap.Error(err))
		return nil, false
	}
	return contents, true
}

// GetPackagesHandler handles GET /api/packages with an optional category
// filter.
func (h *CatalogHandler) GetPackagesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		pkgs []models.TravelPackage
		err  error
	)
	if cat := c.Query("category"); cat != "" {
		pkgs, err = h.PackageRepo.GetByCategory(cat)
	} else {
		pkgs, err = h.PackageRepo.GetAll()
	}
	if err != nil {
		logger.Error("Failed to load packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packages"})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackageByIDHandler handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackageByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	pkg, err := h.PackageRepo.GetByID(id)
	if err != nil {
		logger.Error("Failed to load package", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load package"})
		return
	}
	if pkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetArtistsHandler handles GET /api/artists with an optional subName filter.
func (h *CatalogHandler) GetArtistsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		artists []models.Artist
		err     error
	)
	if sub := c.Query("subName"); sub != "" {
		artists, err = h.ArtistRepo.GetBySubName(sub)
	} else {
		artists, err = h.ArtistRepo.GetAll()
	}
	if err != nil {
		logger.Error("Failed to load artists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, artists)
}

// GetRoutesHandler handles GET /api/routes.
func (h *CatalogHandler) GetRoutesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, route.All())
}

// GetRouteByIDHandler handles GET /api/routes/:id.
func (h *CatalogHandler) GetRouteByIDHandler(c *gin.Context) {
	rt := route.ByID(c.Param("id"))
	if rt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, rt)
}
