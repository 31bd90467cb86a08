// Package postgres stores reference data and normalized trips in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/retry"
)

// DriverName is the database/sql driver registered by lib/pq.
const DriverName = "postgres"

// Schema creates the tables and indexes used by the repositories.
const Schema = `
CREATE TABLE IF NOT EXISTS airports (
	id           BIGSERIAL PRIMARY KEY,
	iata_code    TEXT NOT NULL,
	icao_code    TEXT NOT NULL DEFAULT '',
	name         TEXT NOT NULL,
	city         TEXT NOT NULL DEFAULT '',
	country      TEXT NOT NULL DEFAULT '',
	latitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude    DOUBLE PRECISION NOT NULL DEFAULT 0,
	altitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
	utc_offset   DOUBLE PRECISION NOT NULL DEFAULT 0,
	dst          TEXT NOT NULL DEFAULT '',
	timezone     TEXT NOT NULL DEFAULT '',
	city_airport BOOLEAN NOT NULL DEFAULT FALSE,
	first_class  BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE UNIQUE INDEX IF NOT EXISTS airports_iata_code_key ON airports (iata_code);
CREATE INDEX IF NOT EXISTS airports_city_idx ON airports (city);

CREATE TABLE IF NOT EXISTS airlines (
	id        BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL,
	alias     TEXT NOT NULL DEFAULT '',
	iata_code TEXT NOT NULL DEFAULT '',
	icao_code TEXT NOT NULL DEFAULT '',
	call_sign TEXT NOT NULL DEFAULT '',
	country   TEXT NOT NULL DEFAULT '',
	active    BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS airlines_iata_code_idx ON airlines (iata_code);

CREATE TABLE IF NOT EXISTS trips (
	id                 BIGSERIAL PRIMARY KEY,
	start_city         TEXT NOT NULL DEFAULT '',
	start_country      TEXT NOT NULL DEFAULT '',
	end_city           TEXT NOT NULL DEFAULT '',
	end_country        TEXT NOT NULL DEFAULT '',
	price              DOUBLE PRECISION NOT NULL,
	places_available   INTEGER NOT NULL DEFAULT 0,
	departure          TIMESTAMPTZ NOT NULL,
	arrival            TIMESTAMPTZ NOT NULL,
	stopover           INTEGER NOT NULL,
	company            TEXT NOT NULL,
	start_airport      TEXT NOT NULL DEFAULT '',
	start_airport_code TEXT NOT NULL,
	end_airport        TEXT NOT NULL DEFAULT '',
	end_airport_code   TEXT NOT NULL,
	longitude          DOUBLE PRECISION NOT NULL DEFAULT 0,
	latitude           DOUBLE PRECISION NOT NULL DEFAULT 0,
	start_time         DOUBLE PRECISION NOT NULL DEFAULT 0,
	end_time           DOUBLE PRECISION NOT NULL DEFAULT 0,
	duration           INTEGER NOT NULL DEFAULT 0,
	search_date        TIMESTAMPTZ NOT NULL,
	airport_id         BIGINT NOT NULL REFERENCES airports (id),
	about              TEXT NOT NULL DEFAULT '',
	title              TEXT NOT NULL DEFAULT '',
	type               TEXT NOT NULL DEFAULT 'air',
	lowcost            BOOLEAN NOT NULL DEFAULT FALSE,
	preferred          BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE UNIQUE INDEX IF NOT EXISTS trips_identity_key ON trips
	(start_airport_code, end_airport_code, price, departure, arrival, stopover, company);
`

// Config holds the connection settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	ConnectAttempts int
}

// Open connects to PostgreSQL, retrying while the server is unreachable.
// A malformed DSN or rejected credentials fail at once.
func Open(ctx context.Context, cfg Config, log *logger.Logger) (*sqlx.DB, error) {
	connector, err := pq.NewConnector(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", retry.NewPermanent(err))
	}
	db := sqlx.NewDb(sql.OpenDB(connector), DriverName)

	retryCfg := retry.ConnectConfig.
		WithMaxAttempts(cfg.ConnectAttempts).
		WithOnRetry(func(attempt int, err error) {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Database not reachable, retrying")
		})
	if err := ping(ctx, db, retryCfg); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	return db, nil
}

func ping(ctx context.Context, db *sqlx.DB, cfg retry.Config) error {
	err := retry.Do(ctx, func() error {
		return classifyConnectError(db.PingContext(ctx))
	}, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// classifyConnectError marks failures another attempt cannot fix as permanent:
// rejected credentials (class 28) and unknown databases (class 3D).
func classifyConnectError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "28", "3D":
			return retry.NewPermanent(err)
		}
	}
	return err
}

// Migrate creates missing tables and indexes.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// withTx runs fn in a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
