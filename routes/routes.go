package routes

import (
	"net/http"
	"time"

	"hantrip/handlers"
	"hantrip/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only content catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/pois", hb.GetPOIsHandler)
		api.GET("/pois/:id", hb.GetPOIByIDHandler)
		api.GET("/contents", hb.GetContentsHandler)
		api.GET("/packages", hb.GetPackagesHandler)
		api.GET("/packages/:id", hb.GetPackageByIDHandler)
		api.GET("/artists", hb.GetArtistsHandler)
		api.GET("/routes", hb.GetRoutesHandler)
		api.GET("/routes/:id", hb.GetRouteByIDHandler)
	}
}

// RegisterCartRoutes registers the trip-cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	api.Use(middleware.SessionMiddleware(hb.Sessions))
	{
		api.GET("", hb.GetCartHandler)
		api.POST("", hb.AddCartItemHandler)
		api.POST("/toggle", hb.ToggleCartItemHandler)
		api.DELETE("", hb.ClearCartHandler)
		api.DELETE("/:itemId", hb.RemoveCartItemHandler)
	}
}

// RegisterStateRoutes registers the visitor shell-state endpoints.
func RegisterStateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/state")
	api.Use(middleware.SessionMiddleware(hb.Sessions))
	{
		api.GET("", hb.GetStateHandler)
		api.PUT("/sidebar", hb.SetSidebarHandler)
		api.POST("/sidebar/toggle", hb.ToggleSidebarHandler)
		api.PUT("/search-mode", hb.SetSearchModeHandler)
		api.PUT("/selection", hb.SetSelectionHandler)
		api.DELETE("/selection", hb.ClearSelectionHandler)
		api.PUT("/route", hb.SetRouteHandler)
		api.DELETE("/route", hb.ClearRouteHandler)
		api.POST("/sheet", hb.SheetEventHandler)
	}
}

// RegisterLayoutRoutes registers the layout resolver, panel bodies and search.
func RegisterLayoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(hb.Sessions), middleware.LanguageMiddleware())
	{
		api.POST("/layout", hb.ResolveLayoutHandler)
		api.GET("/panel", hb.GetPanelHandler)
		api.POST("/panel/drilldown", hb.DrillDownHandler)
		api.POST("/search", hb.SearchHandler)
		api.POST("/search/toggle-category", hb.ToggleCategoryHandler)
	}
}

// RegisterMapRoutes registers the map-view and geocoding endpoints.
func RegisterMapRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(hb.Sessions), middleware.LanguageMiddleware())
	{
		api.POST("/maps/view", hb.MapViewHandler)
		api.GET("/maps/ready", hb.MapReadyHandler)
		api.POST("/maps/marker-click", hb.MarkerClickHandler)
		api.GET("/geocode", hb.GeocodeAddressHandler)
	}
}

// RegisterAuthRoutes registers sign-in and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/google", hb.GoogleSignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.RequireUserMiddleware(hb.Sessions))
		api.POST("/signout", hb.SignOutHandler)
		api.GET("/me", hb.CurrentUserHandler)
	}
}

// RegisterPrefsRoutes registers the visitor-preference endpoints.
func RegisterPrefsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prefs")
	api.Use(middleware.SessionMiddleware(hb.Sessions))
	{
		api.GET("", hb.GetPrefsHandler)
		api.PUT("", hb.UpdatePrefsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hantrip"})
	})
}

// RegisterSitemapRoute registers the sitemap endpoint.
func RegisterSitemapRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/sitemap.xml", hb.GetSitemapHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterStateRoutes(r, hb)
	RegisterLayoutRoutes(r, hb)
	RegisterMapRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPrefsRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterSitemapRoute(r, hb)
}
