package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/stardrift-game/stardrift/internal/model"
	"github.com/stardrift-game/stardrift/internal/storage"
)

// Storage is a Postgres-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens a Postgres connection, verifies it and ensures the schema
func New(cfg Config) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, storageErr(err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, storageErr(err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, storageErr(err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB creates a Postgres storage with an existing handle (for testing)
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// Close closes the database connection pool
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

const upsertPlayer = `
INSERT INTO players (
	id, ccc, cs, energy, drones, asteroids, cargo_tier, cargo_ccc,
	asteroid_resources, tasks, last_evaluated_at, last_tap_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
	ccc = EXCLUDED.ccc,
	cs = EXCLUDED.cs,
	energy = EXCLUDED.energy,
	drones = EXCLUDED.drones,
	asteroids = EXCLUDED.asteroids,
	cargo_tier = EXCLUDED.cargo_tier,
	cargo_ccc = EXCLUDED.cargo_ccc,
	asteroid_resources = EXCLUDED.asteroid_resources,
	tasks = EXCLUDED.tasks,
	last_evaluated_at = EXCLUDED.last_evaluated_at,
	last_tap_at = EXCLUDED.last_tap_at
`

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	if _, err := s.db.ExecContext(ctx, upsertPlayer, playerArgs(player)...); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	const query = `
		SELECT id, ccc, cs, energy, drones, asteroids, cargo_tier, cargo_ccc,
		       asteroid_resources, tasks, last_evaluated_at, last_tap_at, created_at
		FROM players
		WHERE id = $1
	`

	var (
		player    model.Player
		drones    pq.Int64Array
		asteroids pq.Int64Array
		tasks     pq.BoolArray
	)
	err := s.db.QueryRowContext(ctx, query, string(id)).Scan(
		&player.ID,
		&player.CCC,
		&player.CS,
		&player.Energy,
		&drones,
		&asteroids,
		&player.CargoTier,
		&player.CargoCCC,
		&player.AsteroidResources,
		&tasks,
		&player.LastEvaluatedAt,
		&player.LastTapAt,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, storageErr(err)
	}

	player.Drones = toInts(drones)
	player.Asteroids = toInts(asteroids)
	player.Tasks = []bool(tasks)
	return &player, nil
}

func (s *Storage) SavePlayerWithExchange(ctx context.Context, player *model.Player, record *model.ExchangeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr(err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertPlayer, playerArgs(player)...); err != nil {
		return storageErr(err)
	}

	const insertExchange = `
		INSERT INTO exchanges (id, player_id, direction, source_amount, result_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, insertExchange,
		record.ID,
		string(record.PlayerID),
		string(record.Direction),
		record.SourceAmount,
		record.ResultAmount,
		record.CreatedAt,
	)
	if err != nil {
		return storageErr(err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *Storage) ExchangesForPlayer(ctx context.Context, id model.PlayerID) ([]*model.ExchangeRecord, error) {
	const query = `
		SELECT id, player_id, direction, source_amount, result_amount, created_at
		FROM exchanges
		WHERE player_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, string(id))
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var records []*model.ExchangeRecord
	for rows.Next() {
		var record model.ExchangeRecord
		err := rows.Scan(
			&record.ID,
			&record.PlayerID,
			&record.Direction,
			&record.SourceAmount,
			&record.ResultAmount,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, storageErr(err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return records, nil
}

func playerArgs(p *model.Player) []any {
	return []any{
		string(p.ID),
		p.CCC,
		p.CS,
		p.Energy,
		toInt64s(p.Drones),
		toInt64s(p.Asteroids),
		p.CargoTier,
		p.CargoCCC,
		p.AsteroidResources,
		pq.BoolArray(p.Tasks),
		p.LastEvaluatedAt,
		p.LastTapAt,
		p.CreatedAt,
	}
}

func toInt64s(in []int) pq.Int64Array {
	out := make(pq.Int64Array, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func toInts(in pq.Int64Array) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// storageErr wraps driver failures so callers see a retryable
// ErrStorageUnavailable instead of raw connection errors
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}
