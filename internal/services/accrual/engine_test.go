package accrual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stardrift-game/stardrift/internal/catalog"
	"github.com/stardrift-game/stardrift/internal/model"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
	start  time.Time
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = New(catalog.Default())
	s.start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

// miner returns a player with drone 1 (96 CCC/day) and a resource pool
func (s *EngineSuite) miner(pool float64) *model.Player {
	p := model.NewPlayer("p1", s.start)
	p.Drones = []int{1}
	p.Asteroids = []int{1}
	p.AsteroidResources = pool
	return p
}

func (s *EngineSuite) TestNoDronesIsNoOp() {
	p := model.NewPlayer("p1", s.start)
	p.Asteroids = []int{1}
	p.AsteroidResources = 1600

	rep, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)
	s.Zero(rep.Mined)
	s.Zero(p.CargoCCC)
	s.Equal(1600.0, p.AsteroidResources)
}

func (s *EngineSuite) TestNoAsteroidsIsNoOp() {
	p := model.NewPlayer("p1", s.start)
	p.Drones = []int{1}

	rep, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)
	s.Zero(rep.Mined)
	s.Zero(p.CargoCCC)
}

func (s *EngineSuite) TestOneHourMinesProportionally() {
	p := s.miner(1600)

	rep, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)

	// 96 CCC/day over one hour
	s.InDelta(4.0, rep.Mined, 1e-9)
	s.InDelta(4.0, p.CargoCCC, 1e-9)
	s.InDelta(1596.0, p.AsteroidResources, 1e-9)
}

func (s *EngineSuite) TestIncomeSumsAcrossDrones() {
	p := s.miner(100000)
	p.Drones = []int{1, 2}
	p.CargoTier = 3

	rep, err := s.engine.Evaluate(p, s.start.Add(24*time.Hour))
	s.Require().NoError(err)

	// 96 + 150 per day
	s.InDelta(246.0, rep.Mined, 1e-9)
}

func (s *EngineSuite) TestZeroElapsedIsIdempotent() {
	p := s.miner(1600)

	_, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)
	cargoAfter := p.CargoCCC
	poolAfter := p.AsteroidResources

	rep, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)
	s.Zero(rep.Mined)
	s.Equal(cargoAfter, p.CargoCCC)
	s.Equal(poolAfter, p.AsteroidResources)
}

func (s *EngineSuite) TestClockSkewNeverAccruesIntoThePast() {
	p := s.miner(1600)

	rep, err := s.engine.Evaluate(p, s.start.Add(-time.Hour))
	s.Require().NoError(err)
	s.Zero(rep.Mined)
	s.Zero(p.CargoCCC)
	s.Equal(1600.0, p.AsteroidResources)

	// The evaluation timestamp never moves backwards
	s.Equal(s.start, p.LastEvaluatedAt)
}

func (s *EngineSuite) TestMinedClampedToRemainingPool() {
	p := s.miner(10)

	rep, err := s.engine.Evaluate(p, s.start.Add(24*time.Hour))
	s.Require().NoError(err)

	s.InDelta(10.0, rep.Mined, 1e-9)
	s.InDelta(10.0, p.CargoCCC, 1e-9)
	s.Zero(p.AsteroidResources)
}

func (s *EngineSuite) TestCapacityClampDiscardsOverflow() {
	p := s.miner(1600)
	// Tier 1 capacity is 50; a full day mines 96

	rep, err := s.engine.Evaluate(p, s.start.Add(24*time.Hour))
	s.Require().NoError(err)

	s.InDelta(96.0, rep.Mined, 1e-9)
	s.InDelta(46.0, rep.Overflow, 1e-9)
	s.Equal(50.0, p.CargoCCC)
	// Overflow is lost, not returned to the pool
	s.InDelta(1504.0, p.AsteroidResources, 1e-9)
}

func (s *EngineSuite) TestAutoCollectMovesWholeBatches() {
	p := s.miner(100000)
	p.CargoTier = 5
	p.CargoCCC = 0
	p.Drones = []int{1, 2, 3} // 470/day

	rep, err := s.engine.Evaluate(p, s.start.Add(24*time.Hour))
	s.Require().NoError(err)

	s.InDelta(470.0, rep.Mined, 1e-9)
	s.InDelta(400.0, rep.AutoCollected, 1e-9)
	s.InDelta(400.0, p.CCC, 1e-9)
	s.InDelta(70.0, p.CargoCCC, 1e-9)
}

func (s *EngineSuite) TestAutoCollectBelowBatchStaysInCargo() {
	p := s.miner(100000)
	p.CargoTier = 5

	rep, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.Require().NoError(err)

	s.InDelta(4.0, rep.Mined, 1e-9)
	s.Zero(rep.AutoCollected)
	s.Zero(p.CCC)
	s.InDelta(4.0, p.CargoCCC, 1e-9)
}

func (s *EngineSuite) TestUnknownTierFails() {
	p := s.miner(1600)
	p.CargoTier = 42

	_, err := s.engine.Evaluate(p, s.start.Add(time.Hour))
	s.ErrorIs(err, model.ErrUnknownCargoTier)
}
