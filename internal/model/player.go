package model

import "time"

// PlayerID uniquely identifies a player across the system.
// It is supplied by the host platform (e.g. a Telegram user ID),
// with a local fallback for development.
type PlayerID string

// EnergyCap is the maximum tap energy a player can hold.
const EnergyCap = 100

// TaskCount is the number of one-off tasks in the task catalog.
const TaskCount = 15

// Player is the mutable per-player ledger state
type Player struct {
	ID PlayerID

	// CCC is the soft currency balance (may carry fractional precision)
	CCC float64
	// CS is the hard currency balance
	CS float64

	// Energy budgets manual taps, bounded in [0, EnergyCap]
	Energy int

	// Drones and Asteroids hold owned catalog IDs in purchase order.
	// Unlocks are strictly sequential: ID k requires ID k-1.
	Drones    []int
	Asteroids []int

	// CargoTier is the active cargo hold level, starting at 1 and
	// monotonically non-decreasing
	CargoTier int
	// CargoCCC is mined-but-uncollected CCC, capped by the tier
	// capacity unless the tier auto-collects
	CargoCCC float64

	// AsteroidResources is the remaining yield across all owned
	// asteroids; never negative
	AsteroidResources float64

	// Tasks is the one-way completion bitset, length TaskCount
	Tasks []bool

	// LastEvaluatedAt is the timestamp of the last accrual evaluation
	LastEvaluatedAt time.Time
	// LastTapAt is the timestamp of the last accepted tap batch
	LastTapAt time.Time

	CreatedAt time.Time
}

// NewPlayer creates a player with default starting state.
// Players are created lazily on first access; there is no registration step.
func NewPlayer(id PlayerID, now time.Time) *Player {
	return &Player{
		ID:              id,
		Energy:          EnergyCap,
		CargoTier:       1,
		Tasks:           make([]bool, TaskCount),
		LastEvaluatedAt: now,
		LastTapAt:       now,
		CreatedAt:       now,
	}
}

// OwnsDrone reports whether the player owns the given drone
func (p *Player) OwnsDrone(droneID int) bool {
	for _, id := range p.Drones {
		if id == droneID {
			return true
		}
	}
	return false
}

// OwnsAsteroid reports whether the player owns the given asteroid
func (p *Player) OwnsAsteroid(asteroidID int) bool {
	for _, id := range p.Asteroids {
		if id == asteroidID {
			return true
		}
	}
	return false
}
