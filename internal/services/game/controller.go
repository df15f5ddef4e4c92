package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/promoplay/eggdraw/internal/mailer"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/services/allocator"
	"github.com/promoplay/eggdraw/internal/services/registry"
)

// Controller orchestrates a play: authorize the identifier, draw a prize,
// record the result, then notify. The draw commits before the result is
// recorded and is never rolled back afterwards.
type Controller struct {
	registry  *registry.Service
	allocator *allocator.Service
	mailer    mailer.Mailer
	logger    *slog.Logger

	mu    sync.Mutex
	plays map[model.Identifier]*sync.Mutex
}

// NewController creates a new game controller
func NewController(
	registry *registry.Service,
	allocator *allocator.Service,
	mailer mailer.Mailer,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		registry:  registry,
		allocator: allocator,
		mailer:    mailer,
		logger:    logger,
		plays:     make(map[model.Identifier]*sync.Mutex),
	}
}

// playLock returns the play lock for one identifier, creating it on first use
func (c *Controller) playLock(id model.Identifier) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.plays[id]
	if !ok {
		lock = &sync.Mutex{}
		c.plays[id] = lock
	}
	return lock
}

// Authorize validates that an identifier may start a play session.
// Returns the player so the UI can greet them by name.
func (c *Controller) Authorize(ctx context.Context, id model.Identifier) (*model.Player, error) {
	player, err := c.registry.Authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.registry.CheckNotPlayed(player); err != nil {
		return nil, err
	}
	return player, nil
}

// Play runs one complete play for an identifier and returns the prize name.
// The whole sequence is serialized per identifier, so N concurrent attempts
// yield at most one success; losers observe ErrAlreadyPlayed. Once the draw
// has consumed stock, a client disconnect no longer cancels the recording.
func (c *Controller) Play(ctx context.Context, id model.Identifier, name, email string) (string, error) {
	lock := c.playLock(id)
	lock.Lock()
	defer lock.Unlock()

	if _, err := c.Authorize(ctx, id); err != nil {
		return "", err
	}

	prize, err := c.allocator.Draw(ctx)
	if err != nil {
		return "", err
	}

	// The stock effect is committed; recording must finish even if the
	// caller goes away
	recorded, err := c.registry.RecordResult(context.WithoutCancel(ctx), id, prize.Name, email)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = recorded.Name
	}

	go c.notify(context.WithoutCancel(ctx), recorded, name, prize.Name)

	return prize.Name, nil
}

// notify sends the winner and internal notices. Failures are logged and
// never reach the player-facing result.
func (c *Controller) notify(ctx context.Context, player *model.Player, name, prizeName string) {
	if player.Email != "" {
		if err := c.mailer.SendWinnerNotice(ctx, player.Email, name, prizeName); err != nil {
			c.logger.Error("winner notice failed",
				slog.String("identifier", string(player.Identifier)),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := c.mailer.SendInternalNotice(ctx, string(player.Identifier), name, prizeName, player.Email); err != nil {
		c.logger.Error("internal notice failed",
			slog.String("identifier", string(player.Identifier)),
			slog.String("error", err.Error()),
		)
	}
}
