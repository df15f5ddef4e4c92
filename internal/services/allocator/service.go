package allocator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/promoplay/eggdraw/internal/dependencies/random"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage"
)

// Config holds allocator behavior settings
type Config struct {
	// SyncWrites persists the catalog immediately after every draw that
	// changes a stock counter. When false the catalog is flushed by the
	// periodic Run loop instead.
	SyncWrites bool
}

// DefaultConfig returns the default allocator configuration
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// Service owns the prize catalog and performs the weighted draw. The whole
// catalog is guarded by one mutex: availability filtering, total-weight
// computation, selection and the stock increment happen as a single atomic
// sequence, so a used counter can never overshoot its cap under concurrent
// draws.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
	cfg     Config

	mu      sync.Mutex
	catalog []*model.Prize
	loaded  bool
	dirty   bool
}

// New creates a new allocator service
func New(storage storage.Storage, random random.Random, logger *slog.Logger, cfg Config) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
		cfg:     cfg,
	}
}

// Load reads the catalog from storage into the cache, replacing any
// previous contents. Catalog order is preserved as declared.
func (s *Service) Load(ctx context.Context) error {
	prizes, err := s.storage.GetCatalog(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = prizes
	s.loaded = true
	s.dirty = false

	s.logger.Info("prize catalog loaded", slog.Int("prizes", len(prizes)))
	return nil
}

// Reload re-reads the catalog from storage, discarding unflushed counters.
// Intended for administrative refresh after the persisted catalog changed.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Draw selects one prize by weighted random choice over the available
// entries and consumes one unit of its stock. Returns ErrNoPrizeAvailable
// when no available prize carries positive weight. A zero-weight prize is
// never selected: its interval has zero width.
func (s *Service) Draw(ctx context.Context) (*model.Prize, error) {
	s.mu.Lock()

	if !s.loaded {
		s.mu.Unlock()
		return nil, model.ErrCatalogNotLoaded
	}

	var total float64
	for _, p := range s.catalog {
		if p.Available() {
			total += p.Weight
		}
	}
	if total <= 0 {
		s.mu.Unlock()
		return nil, model.ErrNoPrizeAvailable
	}

	value := s.random.Float64() * total

	var winner *model.Prize
	var cumulative float64
	for _, p := range s.catalog {
		if !p.Available() || p.Weight <= 0 {
			continue
		}
		cumulative += p.Weight
		if value < cumulative {
			winner = p
			break
		}
		// Guard against float accumulation leaving the last interval
		// infinitesimally short of total
		winner = p
	}

	if winner.Capped() {
		*winner.Used++
		s.dirty = true
	}

	result := winner.Clone()
	s.mu.Unlock()

	s.logger.Info("prize drawn",
		slog.String("prize_id", result.ID),
		slog.String("prize", result.Name),
	)

	if s.cfg.SyncWrites {
		// Best effort: the player already holds the prize, a failed write
		// is retried on the next flush and never undoes the draw
		if err := s.Flush(ctx); err != nil {
			s.logger.Error("catalog write-through failed",
				slog.String("error", err.Error()),
			)
		}
	}

	return result, nil
}

// Catalog returns an ordered snapshot of the cached catalog
func (s *Service) Catalog() []*model.Prize {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneCatalog(s.catalog)
}

// Flush persists the catalog if any stock counter changed since the last
// successful write. The dirty flag stays set on failure so the next flush
// retries.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	if err := s.storage.SaveCatalog(ctx, s.catalog); err != nil {
		return err
	}
	s.dirty = false

	s.logger.Info("prize catalog persisted")
	return nil
}

// Run flushes the catalog on the given interval until ctx is cancelled,
// then performs a final flush. Start it in its own goroutine.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.Flush(context.WithoutCancel(ctx)); err != nil {
				s.logger.Error("final catalog flush failed",
					slog.String("error", err.Error()),
				)
			}
			return
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				s.logger.Error("periodic catalog flush failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
