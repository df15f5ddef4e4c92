package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage"
)

// Config holds retry behavior settings
type Config struct {
	// MaxTries is the total number of attempts per operation
	MaxTries uint
	// InitialInterval is the first backoff delay
	InitialInterval time.Duration
}

// DefaultConfig returns sensible defaults for retry configuration
func DefaultConfig() Config {
	return Config{
		MaxTries:        3,
		InitialInterval: 100 * time.Millisecond,
	}
}

// Storage decorates another storage with bounded exponential backoff on
// transient failures. Business-rule sentinels (not found, catalog not
// loaded, ...) are permanent and returned immediately, so a storage outage
// is never misreported as an eligibility failure.
type Storage struct {
	inner  storage.Storage
	cfg    Config
	logger *slog.Logger
}

// New wraps inner with retry behavior
func New(inner storage.Storage, cfg Config, logger *slog.Logger) *Storage {
	if cfg.MaxTries == 0 {
		cfg = DefaultConfig()
	}
	return &Storage{
		inner:  inner,
		cfg:    cfg,
		logger: logger,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// permanent reports whether err is a business-rule sentinel that must not
// be retried
func permanent(err error) bool {
	return errors.Is(err, model.ErrPlayerNotFound) ||
		errors.Is(err, model.ErrNotEligible) ||
		errors.Is(err, model.ErrAlreadyPlayed) ||
		errors.Is(err, model.ErrPlayerExists) ||
		errors.Is(err, model.ErrCatalogNotLoaded)
}

func retryOp[T any](ctx context.Context, s *Storage, op string, fn func() (T, error)) (T, error) {
	attempt := 0
	result, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		result, err := fn()
		if err != nil && !permanent(err) {
			s.logger.Warn("storage operation failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return result, err
		}
		if err != nil {
			return result, backoff.Permanent(err)
		}
		return result, nil
	},
		backoff.WithBackOff(newBackOff(s.cfg)),
		backoff.WithMaxTries(s.cfg.MaxTries),
	)
	if err != nil {
		return result, err
	}
	return result, nil
}

func newBackOff(cfg Config) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	return b
}

// Player operations

func (s *Storage) GetPlayer(ctx context.Context, id model.Identifier) (*model.Player, error) {
	return retryOp(ctx, s, "get_player", func() (*model.Player, error) {
		return s.inner.GetPlayer(ctx, id)
	})
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	_, err := retryOp(ctx, s, "save_player", func() (struct{}, error) {
		return struct{}{}, s.inner.SavePlayer(ctx, player)
	})
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return retryOp(ctx, s, "list_players", func() ([]*model.Player, error) {
		return s.inner.ListPlayers(ctx)
	})
}

// Eligible-source operations

func (s *Storage) GetEligible(ctx context.Context, id model.Identifier) (*model.EligiblePerson, error) {
	return retryOp(ctx, s, "get_eligible", func() (*model.EligiblePerson, error) {
		return s.inner.GetEligible(ctx, id)
	})
}

func (s *Storage) AppendEligible(ctx context.Context, person *model.EligiblePerson) error {
	_, err := retryOp(ctx, s, "append_eligible", func() (struct{}, error) {
		return struct{}{}, s.inner.AppendEligible(ctx, person)
	})
	return err
}

// Catalog operations

func (s *Storage) GetCatalog(ctx context.Context) ([]*model.Prize, error) {
	return retryOp(ctx, s, "get_catalog", func() ([]*model.Prize, error) {
		return s.inner.GetCatalog(ctx)
	})
}

func (s *Storage) SaveCatalog(ctx context.Context, prizes []*model.Prize) error {
	_, err := retryOp(ctx, s, "save_catalog", func() (struct{}, error) {
		return struct{}{}, s.inner.SaveCatalog(ctx, prizes)
	})
	return err
}
