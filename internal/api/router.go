package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stardrift-game/stardrift/internal/api/handler"
	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/middleware"
	"github.com/stardrift-game/stardrift/internal/services/ledger"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Ledger      *ledger.Controller
	Catalog     *catalog.Catalog
	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Ledger)
	economyHandler := handler.NewEconomyHandler(cfg.Ledger)
	exchangeHandler := handler.NewExchangeHandler(cfg.Ledger)
	catalogHandler := handler.NewCatalogHandler(cfg.Catalog)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware)
	}

	// Player state
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/exchanges", exchangeHandler.History).Methods(http.MethodGet)

	// Gameplay operations
	api.HandleFunc("/tap-batch", economyHandler.TapBatch).Methods(http.MethodPost)
	api.HandleFunc("/collect-cargo", economyHandler.CollectCargo).Methods(http.MethodPost)
	api.HandleFunc("/buy-drone", economyHandler.BuyDrone).Methods(http.MethodPost)
	api.HandleFunc("/buy-asteroid", economyHandler.BuyAsteroid).Methods(http.MethodPost)
	api.HandleFunc("/upgrade-cargo", economyHandler.UpgradeCargo).Methods(http.MethodPost)
	api.HandleFunc("/complete-task", economyHandler.CompleteTask).Methods(http.MethodPost)

	// Currency exchange
	api.HandleFunc("/exchange/ccc-to-cs", exchangeHandler.CccToCs).Methods(http.MethodPost)
	api.HandleFunc("/exchange/cs-to-ccc", exchangeHandler.CsToCcc).Methods(http.MethodPost)

	// Static game tables
	api.HandleFunc("/catalog/drones", catalogHandler.Drones).Methods(http.MethodGet)
	api.HandleFunc("/catalog/asteroids", catalogHandler.Asteroids).Methods(http.MethodGet)
	api.HandleFunc("/catalog/cargo-tiers", catalogHandler.CargoTiers).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
