package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            text PRIMARY KEY,
	name          text NOT NULL,
	email         text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS trips (
	id            text PRIMARY KEY,
	destination   text NOT NULL,
	from_date     timestamptz NOT NULL,
	to_date       timestamptz NOT NULL,
	collaborators text[] NOT NULL DEFAULT '{}',
	notes         jsonb NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS trips_destination_idx ON trips (destination);
CREATE INDEX IF NOT EXISTS trips_collaborators_idx ON trips USING gin (collaborators);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
