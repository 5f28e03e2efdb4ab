package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schemaStatements holds the bootstrap DDL. Every statement is
// IF NOT EXISTS so running the bootstrap repeatedly is a no-op.
// Deleting an author cascades to its books at the schema level.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS author (
		id           SERIAL PRIMARY KEY,
		first_name   VARCHAR(30) NOT NULL,
		last_name    VARCHAR(30),
		created_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS book (
		id           SERIAL PRIMARY KEY,
		title        VARCHAR(50) NOT NULL,
		year         INTEGER NOT NULL DEFAULT 0,
		description  VARCHAR(255),
		stock        INTEGER NOT NULL DEFAULT 0,
		created_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		author_id    INTEGER NOT NULL REFERENCES author(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_author_id ON book(author_id)`,
}

// Bootstrap creates the author and book tables if they are missing.
// Called once at startup, before the container hands the pool to
// repositories.
func (db *PostgresDB) Bootstrap(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	log.Info().Msg("database schema ready")
	return nil
}
