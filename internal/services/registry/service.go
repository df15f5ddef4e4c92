package registry

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/promoplay/eggdraw/internal/dependencies/clock"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage"
)

// Service is the authoritative record of who is allowed to play and whether
// they already have. Writes for one identifier are serialized through a
// per-identifier lock, and RecordResult re-checks HasPlayed at the point of
// write so two concurrent plays can never both win.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[model.Identifier]*sync.Mutex
}

// New creates a new registry service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
		locks:   make(map[model.Identifier]*sync.Mutex),
	}
}

// lockFor returns the write lock for one identifier, creating it on first use
func (s *Service) lockFor(id model.Identifier) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// Authorize looks up the player for an identifier. An active record wins;
// otherwise a fresh player is derived from the eligible-persons source
// without being persisted (it is written on the first recorded result).
// Returns ErrNotEligible when the identifier is unknown to both.
func (s *Service) Authorize(ctx context.Context, id model.Identifier) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	person, err := s.storage.GetEligible(ctx, id)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return nil, model.ErrNotEligible
	}
	if err != nil {
		return nil, err
	}

	return &model.Player{
		Identifier: person.Identifier,
		Name:       strings.TrimSpace(person.Name),
		Email:      person.Email,
		CreatedAt:  s.clock.Now(),
	}, nil
}

// CheckNotPlayed returns ErrAlreadyPlayed if the player has used their play
func (s *Service) CheckNotPlayed(player *model.Player) error {
	if player.HasPlayed {
		return model.ErrAlreadyPlayed
	}
	return nil
}

// RecordResult marks a player as having played and stores their prize.
// The player state is re-read under the identifier lock so a concurrent
// request that already recorded a result is observed and rejected with
// ErrAlreadyPlayed rather than double-winning.
func (s *Service) RecordResult(ctx context.Context, id model.Identifier, prizeName, email string) (*model.Player, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.Authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	if player.HasPlayed {
		return nil, model.ErrAlreadyPlayed
	}

	player.MarkPlayed(prizeName, s.clock.Now())
	if email != "" {
		player.Email = email
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to persist play result",
			slog.String("identifier", string(id)),
			slog.String("prize", prizeName),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("play recorded",
		slog.String("identifier", string(id)),
		slog.String("prize", prizeName),
	)

	return player, nil
}

// Preauthorize adds an identifier to the eligible source (admin import).
// Fails with ErrPlayerExists when the identifier is already known, whether
// it has played or not.
func (s *Service) Preauthorize(ctx context.Context, id model.Identifier, name, email string) error {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.storage.GetPlayer(ctx, id); err == nil {
		return model.ErrPlayerExists
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	if _, err := s.storage.GetEligible(ctx, id); err == nil {
		return model.ErrPlayerExists
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	return s.storage.AppendEligible(ctx, &model.EligiblePerson{
		Identifier: id,
		Name:       name,
		Email:      email,
	})
}

// ListActive returns every player with an active record
func (s *Service) ListActive(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}
