package storage

import (
	"context"

	"github.com/promoplay/eggdraw/internal/model"
)

// Storage defines the interface for data persistence.
//
// Player reads and writes are atomic at single-record granularity. Catalog
// reads and writes are atomic at whole-catalog granularity, and every adapter
// preserves catalog order across round trips so the cumulative-weight draw
// stays deterministic for a given random sequence.
type Storage interface {
	// Player operations (active records: derived or played)
	GetPlayer(ctx context.Context, id model.Identifier) (*model.Player, error)
	SavePlayer(ctx context.Context, player *model.Player) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Eligible-source operations (the pre-authorized import)
	GetEligible(ctx context.Context, id model.Identifier) (*model.EligiblePerson, error)
	AppendEligible(ctx context.Context, person *model.EligiblePerson) error

	// Catalog operations
	GetCatalog(ctx context.Context) ([]*model.Prize, error)
	SaveCatalog(ctx context.Context, prizes []*model.Prize) error
}
