package redis

import (
	"fmt"

	"github.com/promoplay/eggdraw/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "eggdraw"

// playerKey returns the Redis key for an active Player record
func playerKey(id model.Identifier) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of active player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// eligibleKey returns the Redis key for the eligible-persons hash
func eligibleKey() string {
	return fmt.Sprintf("%s:eligible", keyPrefix)
}

// catalogKey returns the Redis key for the prize catalog.
// The whole catalog lives under one key so reads and writes are atomic at
// catalog granularity and declaration order is preserved.
func catalogKey() string {
	return fmt.Sprintf("%s:catalog", keyPrefix)
}
