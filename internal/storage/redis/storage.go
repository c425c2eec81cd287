package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, storageErr(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, playerKey(player.ID), data, 0).Err(); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, storageErr(err)
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) SavePlayerWithExchange(ctx context.Context, player *model.Player, record *model.ExchangeRecord) error {
	playerData, err := json.Marshal(player)
	if err != nil {
		return err
	}
	recordData, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Transactional pipeline: balance update and ledger append land together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), playerData, 0)
	pipe.LPush(ctx, exchangesKey(player.ID), recordData)
	if _, err := pipe.Exec(ctx); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Storage) ExchangesForPlayer(ctx context.Context, id model.PlayerID) ([]*model.ExchangeRecord, error) {
	items, err := s.client.LRange(ctx, exchangesKey(id), 0, -1).Result()
	if err != nil {
		return nil, storageErr(err)
	}

	records := make([]*model.ExchangeRecord, 0, len(items))
	for _, item := range items {
		var record model.ExchangeRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

// storageErr wraps driver failures so callers see a retryable
// ErrStorageUnavailable instead of raw connection errors
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}
