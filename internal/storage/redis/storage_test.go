package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/stardrift-game/stardrift/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) record(id string, at time.Time) *model.ExchangeRecord {
	return &model.ExchangeRecord{
		ID:           id,
		PlayerID:     "p1",
		Direction:    model.ExchangeCccToCs,
		SourceAmount: 100,
		ResultAmount: 1,
		CreatedAt:    at,
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.NewPlayer("p1", s.now)
	player.CCC = 42.5
	player.Drones = []int{1, 2, 3}
	player.Tasks[4] = true

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), got.ID)
	s.Equal(42.5, got.CCC)
	s.Equal([]int{1, 2, 3}, got.Drones)
	s.True(got.Tasks[4])
	s.True(got.CreatedAt.Equal(s.now))
}

func (s *StorageSuite) TestGetMissingPlayer() {
	_, err := s.storage.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveOverwrites() {
	player := model.NewPlayer("p1", s.now)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	player.CCC = 999
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(999.0, got.CCC)
}

// Exchange tests

func (s *StorageSuite) TestSavePlayerWithExchange() {
	player := model.NewPlayer("p1", s.now)
	player.CS = 1

	err := s.storage.SavePlayerWithExchange(s.ctx, player, s.record("r1", s.now))
	s.Require().NoError(err)

	got, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1.0, got.CS)

	records, err := s.storage.ExchangesForPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("r1", records[0].ID)
	s.Equal(model.ExchangeCccToCs, records[0].Direction)
}

func (s *StorageSuite) TestExchangesNewestFirst() {
	player := model.NewPlayer("p1", s.now)

	for i, id := range []string{"r1", "r2", "r3"} {
		at := s.now.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.storage.SavePlayerWithExchange(s.ctx, player, s.record(id, at)))
	}

	records, err := s.storage.ExchangesForPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("r3", records[0].ID)
	s.Equal("r1", records[2].ID)
}

func (s *StorageSuite) TestExchangesForPlayerWithNone() {
	records, err := s.storage.ExchangesForPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestConnectionFailureIsStorageUnavailable() {
	s.mini.Close()

	player := model.NewPlayer("p1", s.now)
	err := s.storage.SavePlayer(s.ctx, player)
	s.ErrorIs(err, model.ErrStorageUnavailable)

	_, err = s.storage.GetPlayer(s.ctx, "p1")
	s.ErrorIs(err, model.ErrStorageUnavailable)
}
