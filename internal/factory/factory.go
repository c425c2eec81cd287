package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/dependencies/clock"
	"github.com/stardrift-game/stardrift/internal/services/accrual"
	"github.com/stardrift-game/stardrift/internal/services/anticheat"
	"github.com/stardrift-game/stardrift/internal/services/exchange"
	"github.com/stardrift-game/stardrift/internal/services/ledger"
	"github.com/stardrift-game/stardrift/internal/storage"
	"github.com/stardrift-game/stardrift/internal/storage/memory"
	pgstorage "github.com/stardrift-game/stardrift/internal/storage/postgres"
	redisstorage "github.com/stardrift-game/stardrift/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Catalog          *catalog.Catalog
	AccrualEngine    *accrual.Engine
	Anticheat        *anticheat.Validator
	ExchangeService  *exchange.Service
	LedgerController *ledger.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds Postgres connection settings (required if StorageType is "postgres")
	PostgresConfig *pgstorage.Config
	// AnticheatConfig tunes tap-batch validation (optional)
	AnticheatConfig anticheat.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := pgstorage.New(*cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'postgres'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.AnticheatConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, anticheatCfg anticheat.Config, logger *slog.Logger) *App {
	cat := catalog.Default()
	accrualEngine := accrual.New(cat)
	validator := anticheat.New(anticheatCfg)
	exchangeService := exchange.New()
	ledgerController := ledger.NewController(store, cat, accrualEngine, validator, exchangeService, clk, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Catalog:          cat,
		AccrualEngine:    accrualEngine,
		Anticheat:        validator,
		ExchangeService:  exchangeService,
		LedgerController: ledgerController,
	}
}
