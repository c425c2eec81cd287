package memory

import (
	"context"
	"sync"

	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	exchanges map[model.PlayerID][]*model.ExchangeRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		exchanges: make(map[model.PlayerID][]*model.ExchangeRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) SavePlayerWithExchange(ctx context.Context, player *model.Player, record *model.ExchangeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	// Prepend: reads return newest-first
	rec := *record
	s.exchanges[player.ID] = append([]*model.ExchangeRecord{&rec}, s.exchanges[player.ID]...)
	return nil
}

func (s *Storage) ExchangesForPlayer(ctx context.Context, id model.PlayerID) ([]*model.ExchangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.exchanges[id]
	out := make([]*model.ExchangeRecord, len(records))
	for i, r := range records {
		rec := *r
		out[i] = &rec
	}
	return out, nil
}

// clonePlayer copies a player so callers cannot mutate stored state
// outside a save
func clonePlayer(p *model.Player) *model.Player {
	cp := *p
	cp.Drones = append([]int(nil), p.Drones...)
	cp.Asteroids = append([]int(nil), p.Asteroids...)
	cp.Tasks = append([]bool(nil), p.Tasks...)
	return &cp
}
