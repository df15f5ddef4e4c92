package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players  map[model.Identifier]*model.Player
	eligible map[model.Identifier]*model.EligiblePerson
	catalog  []*model.Prize
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:  make(map[model.Identifier]*model.Player),
		eligible: make(map[model.Identifier]*model.EligiblePerson),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) GetPlayer(ctx context.Context, id model.Identifier) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *player
	s.players[player.Identifier] = &copied
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		copied := *p
		players = append(players, &copied)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Identifier < players[j].Identifier
	})
	return players, nil
}

// Eligible-source operations

func (s *Storage) GetEligible(ctx context.Context, id model.Identifier) (*model.EligiblePerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.eligible[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *person
	return &copied, nil
}

func (s *Storage) AppendEligible(ctx context.Context, person *model.EligiblePerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *person
	s.eligible[person.Identifier] = &copied
	return nil
}

// Catalog operations

func (s *Storage) GetCatalog(ctx context.Context) ([]*model.Prize, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	return model.CloneCatalog(s.catalog), nil
}

func (s *Storage) SaveCatalog(ctx context.Context, prizes []*model.Prize) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = model.CloneCatalog(prizes)
	return nil
}
