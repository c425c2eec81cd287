package postgres

// schema is applied idempotently at startup. One row per player; exchange
// records are append-only and indexed for newest-first reads.
const schema = `
CREATE TABLE IF NOT EXISTS players (
	id                 TEXT PRIMARY KEY,
	ccc                DOUBLE PRECISION NOT NULL DEFAULT 0,
	cs                 DOUBLE PRECISION NOT NULL DEFAULT 0,
	energy             INTEGER NOT NULL DEFAULT 0,
	drones             INTEGER[] NOT NULL DEFAULT '{}',
	asteroids          INTEGER[] NOT NULL DEFAULT '{}',
	cargo_tier         INTEGER NOT NULL DEFAULT 1,
	cargo_ccc          DOUBLE PRECISION NOT NULL DEFAULT 0,
	asteroid_resources DOUBLE PRECISION NOT NULL DEFAULT 0,
	tasks              BOOLEAN[] NOT NULL DEFAULT '{}',
	last_evaluated_at  TIMESTAMPTZ NOT NULL,
	last_tap_at        TIMESTAMPTZ NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS exchanges (
	id            TEXT PRIMARY KEY,
	player_id     TEXT NOT NULL REFERENCES players(id),
	direction     TEXT NOT NULL,
	source_amount DOUBLE PRECISION NOT NULL,
	result_amount DOUBLE PRECISION NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exchanges_player_created
	ON exchanges (player_id, created_at DESC);
`
