// File: hantrip/handlers/bundle.go
package handlers

import (
	"hantrip/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// session validator the auth middleware runs tokens through.
type HandlerBundle struct {
	Sessions middleware.SessionValidator

	// Catalog endpoints
	GetPOIsHandler        gin.HandlerFunc
	GetPOIByIDHandler     gin.HandlerFunc
	GetContentsHandler    gin.HandlerFunc
	GetPackagesHandler    gin.HandlerFunc
	GetPackageByIDHandler gin.HandlerFunc
	GetArtistsHandler     gin.HandlerFunc
	GetRoutesHandler      gin.HandlerFunc
	GetRouteByIDHandler   gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	ToggleCartItemHandler gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc

	// State endpoints
	GetStateHandler       gin.HandlerFunc
	SetSidebarHandler     gin.HandlerFunc
	ToggleSidebarHandler  gin.HandlerFunc
	SetSearchModeHandler  gin.HandlerFunc
	SetSelectionHandler   gin.HandlerFunc
	ClearSelectionHandler gin.HandlerFunc
	SetRouteHandler       gin.HandlerFunc
	ClearRouteHandler     gin.HandlerFunc
	SheetEventHandler     gin.HandlerFunc

	// Layout and panel endpoints
	ResolveLayoutHandler gin.HandlerFunc
	GetPanelHandler      gin.HandlerFunc
	DrillDownHandler     gin.HandlerFunc

	// Search endpoints
	SearchHandler         gin.HandlerFunc
	ToggleCategoryHandler gin.HandlerFunc

	// Map endpoints
	MapViewHandler     gin.HandlerFunc
	MapReadyHandler    gin.HandlerFunc
	MarkerClickHandler gin.HandlerFunc

	// Geocoding endpoint
	GeocodeAddressHandler gin.HandlerFunc

	// Auth endpoints
	GoogleSignInHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc
	CurrentUserHandler  gin.HandlerFunc

	// Preferences endpoints
	GetPrefsHandler    gin.HandlerFunc
	UpdatePrefsHandler gin.HandlerFunc

	// Sitemap endpoint
	GetSitemapHandler gin.HandlerFunc
}
