package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/promoplay/eggdraw/internal/api/handler"
	"github.com/promoplay/eggdraw/internal/api/middleware"
	"github.com/promoplay/eggdraw/internal/services/allocator"
	"github.com/promoplay/eggdraw/internal/services/game"
	"github.com/promoplay/eggdraw/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	GameController   *game.Controller
	RegistryService  *registry.Service
	AllocatorService *allocator.Service
	// AdminToken protects the admin routes; empty disables them
	AdminToken string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	adminHandler := handler.NewAdminHandler(cfg.RegistryService, cfg.AllocatorService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	adminAuthMiddleware := middleware.AdminAuth(cfg.AdminToken)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player-facing game routes
	api.HandleFunc("/game/authorize", gameHandler.Authorize).Methods(http.MethodPost)
	api.HandleFunc("/game/play", gameHandler.Play).Methods(http.MethodPost)

	// Admin routes (bearer token required)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuthMiddleware)
	admin.HandleFunc("/players", adminHandler.Preauthorize).Methods(http.MethodPost)
	admin.HandleFunc("/players", adminHandler.ListPlayers).Methods(http.MethodGet)
	admin.HandleFunc("/catalog", adminHandler.GetCatalog).Methods(http.MethodGet)
	admin.HandleFunc("/catalog/reload", adminHandler.ReloadCatalog).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
