// File: hantrip/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hantrip/config"
	"hantrip/cron"
	"hantrip/database"
	artistRepoPkg "hantrip/database/repository/artist"
	contentRepoPkg "hantrip/database/repository/content"
	poiRepoPkg "hantrip/database/repository/poi"
	packageRepoPkg "hantrip/database/repository/travelpackage"
	userRepoPkg "hantrip/database/repository/user"
	"hantrip/handlers"
	"hantrip/middleware"
	"hantrip/routes"
	"hantrip/services/cart"
	"hantrip/services/geocode"
	"hantrip/services/maps"
	"hantrip/services/panel"
	"hantrip/services/prefs"
	"hantrip/services/sitemap"
	"hantrip/services/state"
	"hantrip/services/user"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	poiRepo := poiRepoPkg.NewMongoPOIRepo()
	contentRepo := contentRepoPkg.NewMongoKContentRepo()
	packageRepo := packageRepoPkg.NewMongoPackageRepo()
	artistRepo := artistRepoPkg.NewMongoArtistRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	cartService := cart.NewRedisCartService(utils.GetStateCacheClient())
	stateService := state.NewRedisStateService(utils.GetStateCacheClient())
	prefsService := prefs.NewRedisPrefsService(utils.GetStateCacheClient())
	panelService := panel.NewService(poiRepo, contentRepo, cartService, logger)
	userService := user.NewService(userRepo, utils.GetCacheClient(), config.AppConfig.GoogleClientID, logger)
	geocoder := geocode.NewClient(
		config.AppConfig.NaverGeocodeURL,
		config.AppConfig.NaverClientID,
		config.AppConfig.NaverClientSecret,
		logger,
	)
	sitemapService := sitemap.NewService(config.AppConfig.BaseURL, poiRepo, contentRepo, packageRepo, logger)

	adapters := map[string]maps.Adapter{
		"naver":  maps.NewNaverAdapter(config.AppConfig.NaverMapsURL, logger),
		"google": maps.NewGoogleAdapter(config.AppConfig.GoogleMapsURL, logger),
	}

	// handlers.
	catalogHandler := &handlers.CatalogHandler{
		POIRepo:     poiRepo,
		ContentRepo: contentRepo,
		PackageRepo: packageRepo,
		ArtistRepo:  artistRepo,
		Cache:       utils.GetCacheClient(),
	}
	cartHandler := &handlers.CartHandler{CartService: cartService}
	stateHandler := &handlers.StateHandler{StateService: stateService}
	layoutHandler := &handlers.LayoutHandler{StateService: stateService, CartService: cartService}
	panelHandler := &handlers.PanelHandler{PanelService: panelService, StateService: stateService}
	searchHandler := &handlers.SearchHandler{POIRepo: poiRepo, ContentRepo: contentRepo}
	mapsHandler := &handlers.MapsHandler{
		Adapters:     adapters,
		POIRepo:      poiRepo,
		CartService:  cartService,
		StateService: stateService,
	}
	geocodeHandler := &handlers.GeocodeHandler{Geocoder: geocoder}
	authHandler := &handlers.AuthHandler{UserService: userService}
	prefsHandler := &handlers.PrefsHandler{PrefsService: prefsService}
	sitemapHandler := &handlers.SitemapHandler{SitemapService: sitemapService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Session validation for the auth middleware.
		Sessions: userService,

		// Catalog endpoints.
		GetPOIsHandler:        catalogHandler.GetPOIsHandler,
		GetPOIByIDHandler:     catalogHandler.GetPOIByIDHandler,
		GetContentsHandler:    catalogHandler.GetContentsHandler,
		GetPackagesHandler:    catalogHandler.GetPackagesHandler,
		GetPackageByIDHandler: catalogHandler.GetPackageByIDHandler,
		GetArtistsHandler:     catalogHandler.GetArtistsHandler,
		GetRoutesHandler:      catalogHandler.GetRoutesHandler,
		GetRouteByIDHandler:   catalogHandler.GetRouteByIDHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddCartItemHandler:    cartHandler.AddCartItemHandler,
		ToggleCartItemHandler: cartHandler.ToggleCartItemHandler,
		RemoveCartItemHandler: cartHandler.RemoveCartItemHandler,
		ClearCartHandler:      cartHandler.ClearCartHandler,

		// State endpoints.
		GetStateHandler:       stateHandler.GetStateHandler,
		SetSidebarHandler:     stateHandler.SetSidebarHandler,
		ToggleSidebarHandler:  stateHandler.ToggleSidebarHandler,
		SetSearchModeHandler:  stateHandler.SetSearchModeHandler,
		SetSelectionHandler:   stateHandler.SetSelectionHandler,
		ClearSelectionHandler: stateHandler.ClearSelectionHandler,
		SetRouteHandler:       stateHandler.SetRouteHandler,
		ClearRouteHandler:     stateHandler.ClearRouteHandler,
		SheetEventHandler:     stateHandler.SheetEventHandler,

		// Layout and panel endpoints.
		ResolveLayoutHandler: layoutHandler.ResolveLayoutHandler,
		GetPanelHandler:      panelHandler.GetPanelHandler,
		DrillDownHandler:     panelHandler.DrillDownHandler,

		// Search endpoints.
		SearchHandler:         searchHandler.SearchHandler,
		ToggleCategoryHandler: searchHandler.ToggleCategoryHandler,

		// Map endpoints.
		MapViewHandler:     mapsHandler.MapViewHandler,
		MapReadyHandler:    mapsHandler.MapReadyHandler,
		MarkerClickHandler: mapsHandler.MarkerClickHandler,

		// Geocoding endpoint.
		GeocodeAddressHandler: geocodeHandler.GeocodeAddressHandler,

		// Auth endpoints.
		GoogleSignInHandler: authHandler.GoogleSignInHandler,
		SignOutHandler:      authHandler.SignOutHandler,
		CurrentUserHandler:  authHandler.CurrentUserHandler,

		// Preferences endpoints.
		GetPrefsHandler:    prefsHandler.GetPrefsHandler,
		UpdatePrefsHandler: prefsHandler.UpdatePrefsHandler,

		// Sitemap endpoint.
		GetSitemapHandler: sitemapHandler.GetSitemapHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker for sitemap and popularity rebuilds.
	cron.InitWorker(sitemapService, contentRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
