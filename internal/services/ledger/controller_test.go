package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/dependencies/mocks"
	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/services/accrual"
	"github.com/stardrift-game/stardrift/internal/services/anticheat"
	"github.com/stardrift-game/stardrift/internal/services/exchange"
	"github.com/stardrift-game/stardrift/internal/storage/memory"
	"github.com/stardrift-game/stardrift/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	controller *Controller
	store      *memory.Storage
	clock      *mocks.MockClock
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	cat := catalog.Default()
	s.controller = NewController(
		s.store,
		cat,
		accrual.New(cat),
		anticheat.New(anticheat.DefaultConfig()),
		exchange.New(),
		s.clock,
		testutil.NopLogger(),
	)
}

// fund completes enough tasks to give the player the wanted CS balance
func (s *ControllerSuite) fund(id model.PlayerID, cs int) *model.Player {
	s.Require().LessOrEqual(cs, model.TaskCount)
	var player *model.Player
	var err error
	for taskID := 1; taskID <= cs; taskID++ {
		player, err = s.controller.CompleteTask(s.ctx, id, taskID)
		s.Require().NoError(err)
	}
	return player
}

func (s *ControllerSuite) TestGetPlayerCreatesLazily() {
	player, err := s.controller.GetPlayer(s.ctx, "new-player")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("new-player"), player.ID)
	s.Equal(model.EnergyCap, player.Energy)
	s.Equal(1, player.CargoTier)
	s.Len(player.Tasks, model.TaskCount)
	s.Equal(s.clock.Now(), player.CreatedAt)

	// The created player is persisted
	stored, err := s.store.GetPlayer(s.ctx, "new-player")
	s.Require().NoError(err)
	s.Equal(player.ID, stored.ID)
}

func (s *ControllerSuite) TestCompleteTaskPaysOnce() {
	player, err := s.controller.CompleteTask(s.ctx, "p1", 1)
	s.Require().NoError(err)
	s.Equal(TaskReward, player.CS)
	s.True(player.Tasks[0])

	_, err = s.controller.CompleteTask(s.ctx, "p1", 1)
	s.ErrorIs(err, model.ErrAlreadyCompleted)
}

func (s *ControllerSuite) TestCompleteTaskUnknownID() {
	_, err := s.controller.CompleteTask(s.ctx, "p1", 0)
	s.ErrorIs(err, model.ErrUnknownTask)

	_, err = s.controller.CompleteTask(s.ctx, "p1", model.TaskCount+1)
	s.ErrorIs(err, model.ErrUnknownTask)
}

func (s *ControllerSuite) TestBuyDroneDeductsAndRecords() {
	s.fund("p1", 2)

	player, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.Require().NoError(err)
	s.Equal(1.0, player.CS)
	s.Equal([]int{1}, player.Drones)
}

func (s *ControllerSuite) TestBuyDroneSequentialUnlock() {
	// Regardless of wealth, drone 3 needs drone 2 first
	s.fund("p1", 15)

	_, err := s.controller.BuyDrone(s.ctx, "p1", 3)
	s.ErrorIs(err, model.ErrLockedTier)

	// And the locked-tier check fires even when the player could not
	// afford it either
	_, err = s.controller.BuyDrone(s.ctx, "p2", 3)
	s.ErrorIs(err, model.ErrLockedTier)
}

func (s *ControllerSuite) TestBuyDroneDuplicate() {
	s.fund("p1", 2)

	_, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.Require().NoError(err)

	_, err = s.controller.BuyDrone(s.ctx, "p1", 1)
	s.ErrorIs(err, model.ErrAlreadyOwned)
}

func (s *ControllerSuite) TestBuyDroneInsufficientFunds() {
	_, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.ErrorIs(err, model.ErrInsufficientFunds)
}

func (s *ControllerSuite) TestBuyDroneUnknownID() {
	_, err := s.controller.BuyDrone(s.ctx, "p1", 99)
	s.ErrorIs(err, model.ErrUnknownDrone)
}

func (s *ControllerSuite) TestBuyDroneDoesNotBackdateMining() {
	s.fund("p1", 10)

	// A long pause before the first drone purchase
	s.clock.Advance(48 * time.Hour)

	player, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.Require().NoError(err)
	player, err = s.controller.BuyAsteroid(s.ctx, "p1", 1)
	s.Require().NoError(err)
	s.Zero(player.CargoCCC)

	// Only time after the purchase mines
	s.clock.Advance(time.Hour)
	player, err = s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.InDelta(4.0, player.CargoCCC, 1e-9)
}

func (s *ControllerSuite) TestBuyAsteroidCreditsPool() {
	s.fund("p1", 10)

	player, err := s.controller.BuyAsteroid(s.ctx, "p1", 1)
	s.Require().NoError(err)
	s.Equal(6.0, player.CS)
	s.Equal([]int{1}, player.Asteroids)
	s.Equal(1600.0, player.AsteroidResources)
}

func (s *ControllerSuite) TestBuyAsteroidSequentialUnlock() {
	s.fund("p1", 15)

	_, err := s.controller.BuyAsteroid(s.ctx, "p1", 2)
	s.ErrorIs(err, model.ErrLockedTier)
}

func (s *ControllerSuite) TestCollectCargoMovesBalance() {
	s.fund("p1", 10)
	_, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.Require().NoError(err)
	_, err = s.controller.BuyAsteroid(s.ctx, "p1", 1)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	player, err := s.controller.CollectCargo(s.ctx, "p1")
	s.Require().NoError(err)
	s.InDelta(4.0, player.CCC, 1e-9)
	s.Zero(player.CargoCCC)
}

func (s *ControllerSuite) TestCollectCargoEmpty() {
	_, err := s.controller.CollectCargo(s.ctx, "p1")
	s.ErrorIs(err, model.ErrInsufficientCargo)
}

func (s *ControllerSuite) TestCollectCargoAutoCollectTier() {
	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	player.CargoTier = 5
	player.CargoCCC = 42
	s.Require().NoError(s.store.SavePlayer(s.ctx, player))

	_, err = s.controller.CollectCargo(s.ctx, "p1")
	s.ErrorIs(err, model.ErrInsufficientCargo)
}

func (s *ControllerSuite) TestUpgradeCargo() {
	s.fund("p1", 10)

	player, err := s.controller.UpgradeCargo(s.ctx, "p1", 2)
	s.Require().NoError(err)
	s.Equal(2, player.CargoTier)
	s.Equal(5.0, player.CS)
}

func (s *ControllerSuite) TestUpgradeCargoSkippingLevelsAllowed() {
	s.fund("p1", 15)
	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	player.CS = 100
	s.Require().NoError(s.store.SavePlayer(s.ctx, player))

	player, err = s.controller.UpgradeCargo(s.ctx, "p1", 4)
	s.Require().NoError(err)
	s.Equal(4, player.CargoTier)
	s.Equal(0.0, player.CS)
}

func (s *ControllerSuite) TestUpgradeCargoDowngradeRejected() {
	s.fund("p1", 10)
	_, err := s.controller.UpgradeCargo(s.ctx, "p1", 2)
	s.Require().NoError(err)

	_, err = s.controller.UpgradeCargo(s.ctx, "p1", 1)
	s.ErrorIs(err, model.ErrInvalidLevel)
	_, err = s.controller.UpgradeCargo(s.ctx, "p1", 2)
	s.ErrorIs(err, model.ErrInvalidLevel)
}

func (s *ControllerSuite) TestUpgradeCargoUnknownLevel() {
	s.fund("p1", 15)

	_, err := s.controller.UpgradeCargo(s.ctx, "p1", 42)
	s.ErrorIs(err, model.ErrInvalidLevel)
}

func (s *ControllerSuite) TestCommitTapBatch() {
	_, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)

	player, err := s.controller.CommitTapBatch(s.ctx, "p1", model.TapReport{
		Clicks:      30,
		EnergyAfter: model.EnergyCap - 30,
		CargoAfter:  30,
	})
	s.Require().NoError(err)
	s.Equal(model.EnergyCap-30, player.Energy)
	s.Equal(30.0, player.CargoCCC)
	s.Equal(s.clock.Now(), player.LastTapAt)
}

func (s *ControllerSuite) TestCommitTapBatchRejectionLeavesStateUntouched() {
	_, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)

	s.clock.Advance(10 * time.Second)

	_, err = s.controller.CommitTapBatch(s.ctx, "p1", model.TapReport{
		Clicks:      50,
		EnergyAfter: model.EnergyCap - 50,
		CargoAfter:  50,
	})
	s.ErrorIs(err, model.ErrSuspectedCheating)

	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.EnergyCap, player.Energy)
	s.Zero(player.CargoCCC)
}

func (s *ControllerSuite) TestCommitTapBatchNegativeCargoRejected() {
	_, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)

	s.clock.Advance(10 * time.Second)

	// Clicks and energy line up, but the claimed cargo is negative
	_, err = s.controller.CommitTapBatch(s.ctx, "p1", model.TapReport{
		Clicks:      5,
		EnergyAfter: model.EnergyCap - 5,
		CargoAfter:  -500,
	})
	s.ErrorIs(err, model.ErrSuspectedCheating)

	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.GreaterOrEqual(player.CargoCCC, 0.0)
	s.Equal(model.EnergyCap, player.Energy)
}

func (s *ControllerSuite) TestCommitTapBatchSupersedesIdleWindow() {
	s.fund("p1", 10)
	_, err := s.controller.BuyDrone(s.ctx, "p1", 1)
	s.Require().NoError(err)
	_, err = s.controller.BuyAsteroid(s.ctx, "p1", 1)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	// The committed cargo value replaces whatever idle mining would
	// have produced over the same window
	player, err := s.controller.CommitTapBatch(s.ctx, "p1", model.TapReport{
		Clicks:      10,
		EnergyAfter: model.EnergyCap - 10,
		CargoAfter:  10,
	})
	s.Require().NoError(err)
	s.Equal(10.0, player.CargoCCC)
	s.Equal(s.clock.Now(), player.LastEvaluatedAt)
}

func (s *ControllerSuite) TestExchangeCccToCs() {
	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	player.CCC = 300
	s.Require().NoError(s.store.SavePlayer(s.ctx, player))

	player, record, err := s.controller.ExchangeCccToCs(s.ctx, "p1", 300)
	s.Require().NoError(err)
	s.InDelta(0.0, player.CCC, 1e-9)
	s.InDelta(3.0, player.CS, 1e-9)
	s.Equal(model.ExchangeCccToCs, record.Direction)

	// The record is persisted atomically with the balance change
	records, err := s.controller.ExchangeHistory(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(record.ID, records[0].ID)
}

func (s *ControllerSuite) TestExchangeInsufficientFundsWritesNothing() {
	_, _, err := s.controller.ExchangeCccToCs(s.ctx, "p1", 100)
	s.ErrorIs(err, model.ErrInsufficientFunds)

	records, err := s.controller.ExchangeHistory(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *ControllerSuite) TestExchangeHistoryNewestFirst() {
	player, err := s.controller.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	player.CCC = 200
	s.Require().NoError(s.store.SavePlayer(s.ctx, player))

	_, first, err := s.controller.ExchangeCccToCs(s.ctx, "p1", 200)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	_, second, err := s.controller.ExchangeCsToCcc(s.ctx, "p1", 2)
	s.Require().NoError(err)

	records, err := s.controller.ExchangeHistory(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(second.ID, records[0].ID)
	s.Equal(first.ID, records[1].ID)
}
