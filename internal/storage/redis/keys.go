package redis

import (
	"fmt"

	"github.com/stardrift-game/stardrift/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "stardrift"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// exchangesKey returns the Redis key for a player's exchange history list.
// Records are LPUSHed so index 0 is always the newest.
func exchangesKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:exchanges:%s", keyPrefix, id)
}
