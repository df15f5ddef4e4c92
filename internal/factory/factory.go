package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/promoplay/eggdraw/internal/dependencies/clock"
	"github.com/promoplay/eggdraw/internal/dependencies/random"
	"github.com/promoplay/eggdraw/internal/mailer"
	"github.com/promoplay/eggdraw/internal/services/allocator"
	"github.com/promoplay/eggdraw/internal/services/game"
	"github.com/promoplay/eggdraw/internal/services/registry"
	"github.com/promoplay/eggdraw/internal/storage"
	filestorage "github.com/promoplay/eggdraw/internal/storage/file"
	"github.com/promoplay/eggdraw/internal/storage/memory"
	redisstorage "github.com/promoplay/eggdraw/internal/storage/redis"
	"github.com/promoplay/eggdraw/internal/storage/retry"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeFile   = "file"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Mailer mailer.Mailer

	// Services
	Registry       *registry.Service
	Allocator      *allocator.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "file")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DataDir is the flat-file data directory (required if StorageType is "file")
	DataDir string
	// RetryConfig controls the storage retry decorator (optional)
	RetryConfig retry.Config
	// AllocatorConfig controls catalog persistence behavior (optional)
	AllocatorConfig allocator.Config
	// SMTPConfig enables SMTP notifications; if nil, notices are logged only
	SMTPConfig *mailer.SMTPConfig
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
	case StorageTypeFile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'file'")
	}

	// Transient storage failures are retried at the boundary
	retryCfg := cfg.RetryConfig
	if retryCfg.MaxTries == 0 {
		retryCfg = retry.DefaultConfig()
	}
	store = retry.New(store, retryCfg, logger)

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	var mail mailer.Mailer
	if cfg.SMTPConfig != nil {
		mail = mailer.NewSMTP(*cfg.SMTPConfig)
	} else {
		mail = mailer.NewLog(logger)
	}

	allocCfg := cfg.AllocatorConfig
	return newWithDependencies(store, clk, rnd, mail, allocCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	mail mailer.Mailer,
	allocCfg allocator.Config,
	logger *slog.Logger,
) *App {
	registryService := registry.New(store, clk, logger)
	allocatorService := allocator.New(store, rnd, logger, allocCfg)
	gameController := game.NewController(registryService, allocatorService, mail, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Mailer:         mail,
		Registry:       registryService,
		Allocator:      allocatorService,
		GameController: gameController,
	}
}
