package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

const airlineColumns = `id, name, alias, iata_code, icao_code, call_sign, country, active`

const insertAirlineSQL = `
INSERT INTO airlines (name, alias, iata_code, icao_code, call_sign, country, active)
VALUES (:name, :alias, :iata_code, :icao_code, :call_sign, :country, :active)`

// AirlineRepository implements domain.AirlineRepository.
type AirlineRepository struct {
	db *sqlx.DB
}

// NewAirlineRepository creates an airline repository.
func NewAirlineRepository(db *sqlx.DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

func (r *AirlineRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM airlines`); err != nil {
		return 0, fmt.Errorf("failed to count airlines: %w", err)
	}
	return n, nil
}

func (r *AirlineRepository) InsertMany(ctx context.Context, airlines []domain.AirlineRecord) (int, error) {
	var inserted int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, insertAirlineSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare airline insert: %w", err)
		}
		defer stmt.Close()

		for i := range airlines {
			res, err := stmt.ExecContext(ctx, &airlines[i])
			if err != nil {
				return fmt.Errorf("failed to insert airline %q: %w", airlines[i].Name, err)
			}
			n, _ := res.RowsAffected()
			inserted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}

// FindByCode prefers active carriers, then the earliest loaded row, since
// IATA airline codes are reused in the source data.
func (r *AirlineRepository) FindByCode(ctx context.Context, code string) (*domain.AirlineRecord, error) {
	var airline domain.AirlineRecord
	err := r.db.GetContext(ctx, &airline,
		`SELECT `+airlineColumns+` FROM airlines
		 WHERE iata_code = $1
		 ORDER BY active DESC, id LIMIT 1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: airline %q", domain.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to load airline %q: %w", code, err)
	}
	return &airline, nil
}

var _ domain.AirlineRepository = (*AirlineRepository)(nil)
