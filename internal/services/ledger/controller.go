// Package ledger is the single source of truth for player state. Every
// mutating operation runs as a serialized read-modify-write against one
// player's record, with idle accrual evaluated lazily at the start of
// each operation.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/dependencies/clock"
	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/services/accrual"
	"github.com/stardrift-game/stardrift/internal/services/anticheat"
	"github.com/stardrift-game/stardrift/internal/services/exchange"
	"github.com/stardrift-game/stardrift/internal/storage"
)

// TaskReward is the CS credited for completing a task
const TaskReward = 1.0

// Controller orchestrates all player-state operations
type Controller struct {
	storage   storage.Storage
	catalog   *catalog.Catalog
	accrual   *accrual.Engine
	anticheat *anticheat.Validator
	exchange  *exchange.Service
	clock     clock.Clock
	logger    *slog.Logger
	locks     *playerLocks
}

// NewController creates a new ledger controller
func NewController(
	store storage.Storage,
	cat *catalog.Catalog,
	accrualEngine *accrual.Engine,
	validator *anticheat.Validator,
	exchangeService *exchange.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		catalog:   cat,
		accrual:   accrualEngine,
		anticheat: validator,
		exchange:  exchangeService,
		clock:     clk,
		logger:    logger,
		locks:     newPlayerLocks(),
	}
}

// GetPlayer returns the player's current state, creating the player on
// first access and advancing idle accrual before returning.
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := c.locks.acquire(id)
	defer unlock()

	now := c.clock.Now()
	player, err := c.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}

	if err := c.accrue(player, now); err != nil {
		return nil, err
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// CollectCargo moves the full cargo balance into the player's CCC.
// Auto-collect tiers never expose manual collection.
func (c *Controller) CollectCargo(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.update(ctx, id, func(player *model.Player, now time.Time) error {
		tier, err := c.catalog.Tier(player.CargoTier)
		if err != nil {
			return err
		}
		if tier.AutoCollect || player.CargoCCC < 1 {
			return model.ErrInsufficientCargo
		}

		collected := player.CargoCCC
		player.CCC += collected
		player.CargoCCC = 0

		c.logger.Info("cargo collected",
			slog.String("player_id", string(player.ID)),
			slog.Float64("amount", collected),
		)
		return nil
	})
}

// BuyDrone purchases a drone for CS. Drones unlock strictly sequentially.
func (c *Controller) BuyDrone(ctx context.Context, id model.PlayerID, droneID int) (*model.Player, error) {
	return c.update(ctx, id, func(player *model.Player, now time.Time) error {
		drone, err := c.catalog.Drone(droneID)
		if err != nil {
			return err
		}
		if player.OwnsDrone(droneID) {
			return model.ErrAlreadyOwned
		}
		if droneID > 1 && !player.OwnsDrone(droneID-1) {
			return model.ErrLockedTier
		}
		if player.CS < drone.Cost {
			return model.ErrInsufficientFunds
		}

		player.CS -= drone.Cost
		player.Drones = append(player.Drones, droneID)
		// Mining starts from the purchase, not from whenever the
		// accrual clock last ran
		player.LastEvaluatedAt = now

		c.logger.Info("drone purchased",
			slog.String("player_id", string(player.ID)),
			slog.Int("drone_id", droneID),
			slog.Float64("cost", drone.Cost),
		)
		return nil
	})
}

// BuyAsteroid purchases an asteroid for CS and credits its yield to the
// player's resource pool. Asteroids unlock strictly sequentially.
func (c *Controller) BuyAsteroid(ctx context.Context, id model.PlayerID, asteroidID int) (*model.Player, error) {
	return c.update(ctx, id, func(player *model.Player, now time.Time) error {
		asteroid, err := c.catalog.Asteroid(asteroidID)
		if err != nil {
			return err
		}
		if player.OwnsAsteroid(asteroidID) {
			return model.ErrAlreadyOwned
		}
		if asteroidID > 1 && !player.OwnsAsteroid(asteroidID-1) {
			return model.ErrLockedTier
		}
		if player.CS < asteroid.Cost {
			return model.ErrInsufficientFunds
		}

		player.CS -= asteroid.Cost
		player.Asteroids = append(player.Asteroids, asteroidID)
		player.AsteroidResources += asteroid.Yield
		player.LastEvaluatedAt = now

		c.logger.Info("asteroid purchased",
			slog.String("player_id", string(player.ID)),
			slog.Int("asteroid_id", asteroidID),
			slog.Float64("cost", asteroid.Cost),
		)
		return nil
	})
}

// UpgradeCargo raises the player's cargo tier to targetLevel
func (c *Controller) UpgradeCargo(ctx context.Context, id model.PlayerID, targetLevel int) (*model.Player, error) {
	return c.update(ctx, id, func(player *model.Player, now time.Time) error {
		if targetLevel <= player.CargoTier {
			return model.ErrInvalidLevel
		}
		tier, err := c.catalog.Tier(targetLevel)
		if err != nil {
			return model.ErrInvalidLevel
		}
		if player.CS < tier.UpgradeCost {
			return model.ErrInsufficientFunds
		}

		player.CS -= tier.UpgradeCost
		player.CargoTier = targetLevel

		c.logger.Info("cargo upgraded",
			slog.String("player_id", string(player.ID)),
			slog.Int("level", targetLevel),
		)
		return nil
	})
}

// CompleteTask marks a one-off task done and credits the fixed CS reward.
// Task bits only flip false to true.
func (c *Controller) CompleteTask(ctx context.Context, id model.PlayerID, taskID int) (*model.Player, error) {
	return c.update(ctx, id, func(player *model.Player, now time.Time) error {
		if taskID < 1 || taskID > model.TaskCount {
			return model.ErrUnknownTask
		}
		if player.Tasks[taskID-1] {
			return model.ErrAlreadyCompleted
		}

		player.Tasks[taskID-1] = true
		player.CS += TaskReward

		c.logger.Info("task completed",
			slog.String("player_id", string(player.ID)),
			slog.Int("task_id", taskID),
		)
		return nil
	})
}

// CommitTapBatch validates a client-reported tap batch and, if plausible,
// commits its energy and cargo deltas. The tap commit supersedes idle
// accrual for the covered window, so accrual is deliberately not run
// first here.
func (c *Controller) CommitTapBatch(ctx context.Context, id model.PlayerID, report model.TapReport) (*model.Player, error) {
	unlock := c.locks.acquire(id)
	defer unlock()

	now := c.clock.Now()
	player, err := c.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}

	if err := c.anticheat.Validate(player, report, now); err != nil {
		c.logger.Warn("tap batch rejected",
			slog.String("player_id", string(player.ID)),
			slog.Int("clicks", report.Clicks),
			slog.Int("energy_after", report.EnergyAfter),
		)
		return nil, err
	}

	player.Energy = report.EnergyAfter
	player.CargoCCC = report.CargoAfter
	player.LastTapAt = now
	player.LastEvaluatedAt = now

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// ExchangeCccToCs converts amount CCC into CS at the fixed 100:1 rate,
// appending an exchange record atomically with the balance update.
func (c *Controller) ExchangeCccToCs(ctx context.Context, id model.PlayerID, amount float64) (*model.Player, *model.ExchangeRecord, error) {
	return c.convert(ctx, id, amount, c.exchange.CccToCs)
}

// ExchangeCsToCcc converts amount CS into CCC at the fixed 1:50 rate
func (c *Controller) ExchangeCsToCcc(ctx context.Context, id model.PlayerID, amount float64) (*model.Player, *model.ExchangeRecord, error) {
	return c.convert(ctx, id, amount, c.exchange.CsToCcc)
}

// ExchangeHistory returns the player's exchange records, newest first
func (c *Controller) ExchangeHistory(ctx context.Context, id model.PlayerID) ([]*model.ExchangeRecord, error) {
	return c.storage.ExchangesForPlayer(ctx, id)
}

type convertFunc func(*model.Player, float64, time.Time) (*model.ExchangeRecord, error)

func (c *Controller) convert(ctx context.Context, id model.PlayerID, amount float64, fn convertFunc) (*model.Player, *model.ExchangeRecord, error) {
	unlock := c.locks.acquire(id)
	defer unlock()

	now := c.clock.Now()
	player, err := c.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, nil, err
	}

	if err := c.accrue(player, now); err != nil {
		return nil, nil, err
	}

	record, err := fn(player, amount, now)
	if err != nil {
		return nil, nil, err
	}

	if err := c.storage.SavePlayerWithExchange(ctx, player, record); err != nil {
		return nil, nil, err
	}

	c.logger.Info("exchange completed",
		slog.String("player_id", string(player.ID)),
		slog.String("direction", string(record.Direction)),
		slog.Float64("source_amount", record.SourceAmount),
		slog.Float64("result_amount", record.ResultAmount),
	)
	return player, record, nil
}

// update runs fn inside the standard operation frame: per-player lock,
// lazy creation, accrual, mutation, save.
func (c *Controller) update(ctx context.Context, id model.PlayerID, fn func(*model.Player, time.Time) error) (*model.Player, error) {
	unlock := c.locks.acquire(id)
	defer unlock()

	now := c.clock.Now()
	player, err := c.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}

	if err := c.accrue(player, now); err != nil {
		return nil, err
	}

	if err := fn(player, now); err != nil {
		return nil, err
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (c *Controller) loadOrCreate(ctx context.Context, id model.PlayerID, now time.Time) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player = model.NewPlayer(id, now)
	c.logger.Info("player created", slog.String("player_id", string(id)))
	return player, nil
}

func (c *Controller) accrue(player *model.Player, now time.Time) error {
	rep, err := c.accrual.Evaluate(player, now)
	if err != nil {
		return err
	}
	if rep.Mined > 0 {
		c.logger.Debug("accrual evaluated",
			slog.String("player_id", string(player.ID)),
			slog.Float64("mined", rep.Mined),
			slog.Float64("auto_collected", rep.AutoCollected),
			slog.Float64("overflow", rep.Overflow),
			slog.Duration("elapsed", rep.Elapsed),
		)
	}
	return nil
}
