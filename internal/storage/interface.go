package storage

import (
	"context"

	"github.com/stardrift-game/stardrift/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations must treat each call as atomic: a failed save leaves the
// previous state intact, and SavePlayerWithExchange persists the player
// update and the exchange record together or not at all.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Exchange operations. Records are append-only and returned
	// newest-first.
	SavePlayerWithExchange(ctx context.Context, player *model.Player, record *model.ExchangeRecord) error
	ExchangesForPlayer(ctx context.Context, id model.PlayerID) ([]*model.ExchangeRecord, error)
}
