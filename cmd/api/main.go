package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"preloved-backend/config"
	"preloved-backend/internal/delivery/http/middleware"
	v1 "preloved-backend/internal/delivery/http/v1"
	"preloved-backend/internal/infrastructure/cache"
	"preloved-backend/internal/pricing"
	memrepo "preloved-backend/internal/repository/memory"
	"preloved-backend/internal/session"
	"preloved-backend/internal/usecase"
	"preloved-backend/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Catalog data source (mocked in-memory; a future service layer
	// replaces this behind the same interface)
	catalogRepo, err := memrepo.NewSeededCatalogRepository()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog seed")
	}
	log.Info().Msg("Catalog seeded from embedded fixture")

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Session-scoped store bundle (cart, favorites, filter)
	sessionCache := cache.NewMemoryCache(cfg.SessionTTL, cfg.SessionCleanupInterval)
	sessions := session.NewManager(sessionCache, cfg.SessionTTL)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, sessions, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)

	// Cart Module
	calc := pricing.NewCalculator(cfg.FreeShippingThreshold, cfg.ShippingFee)
	cartUC := usecase.NewCartUsecase(catalogRepo, sessions, calc)
	cartHandler := v1.NewCartHandler(cartUC, cfg.MaxCartQuantity)

	// Favorites Module
	favoritesUC := usecase.NewFavoritesUsecase(catalogRepo, sessions)
	favoritesHandler := v1.NewFavoritesHandler(favoritesUC)

	// Dashboard Module
	dashboardHandler := v1.NewDashboardHandler(catalogUC, cartUC, favoritesUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/listings", catalogHandler.ListListings)
	mux.HandleFunc("GET /api/v1/listings/{id}", catalogHandler.GetListing)
	mux.HandleFunc("POST /api/v1/listings", catalogHandler.CreateListing)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/filters", catalogHandler.GetFilters)
	mux.HandleFunc("DELETE /api/v1/filters", catalogHandler.ClearFilters)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddToCart)
	mux.HandleFunc("PUT /api/v1/cart", cartHandler.UpdateCart)
	mux.HandleFunc("DELETE /api/v1/cart/{lineId}", cartHandler.RemoveFromCart)

	// Favorites
	mux.HandleFunc("GET /api/v1/favorites", favoritesHandler.GetFavorites)
	mux.HandleFunc("POST /api/v1/favorites", favoritesHandler.ToggleFavorite)

	// Dashboard
	mux.HandleFunc("GET /api/v1/dashboard", dashboardHandler.GetDashboard)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS, Session resolution, Request Logger, Rate Limit, and Gzip
	handler := middleware.SessionMiddleware(sessions, cfg)(mux)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
