package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

const airportColumns = `id, iata_code, icao_code, name, city, country, latitude, longitude,
	altitude, utc_offset, dst, timezone, city_airport, first_class`

// Airports sharing a code with a stored airport are skipped.
const insertAirportSQL = `
INSERT INTO airports
	(iata_code, icao_code, name, city, country, latitude, longitude,
	 altitude, utc_offset, dst, timezone, city_airport, first_class)
VALUES
	(:iata_code, :icao_code, :name, :city, :country, :latitude, :longitude,
	 :altitude, :utc_offset, :dst, :timezone, :city_airport, :first_class)
ON CONFLICT (iata_code) DO NOTHING`

// AirportRepository implements domain.AirportRepository.
type AirportRepository struct {
	db *sqlx.DB
}

// NewAirportRepository creates an airport repository.
func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM airports`); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return n, nil
}

func (r *AirportRepository) InsertMany(ctx context.Context, airports []domain.AirportRecord) (int, error) {
	var inserted int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, insertAirportSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare airport insert: %w", err)
		}
		defer stmt.Close()

		for i := range airports {
			res, err := stmt.ExecContext(ctx, &airports[i])
			if err != nil {
				return fmt.Errorf("failed to insert airport %q: %w", airports[i].IATACode, err)
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

func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*domain.AirportRecord, error) {
	return r.getOne(ctx, fmt.Sprintf("airport %q", code),
		`SELECT `+airportColumns+` FROM airports WHERE iata_code = $1 LIMIT 1`, code)
}

func (r *AirportRepository) FindCityAirport(ctx context.Context, city string) (*domain.AirportRecord, error) {
	return r.getOne(ctx, fmt.Sprintf("city airport of %q", city),
		`SELECT `+airportColumns+` FROM airports
		 WHERE city = $1 AND city_airport
		 ORDER BY id LIMIT 1`, city)
}

func (r *AirportRepository) FindCityTopAirport(ctx context.Context, city string) (*domain.AirportRecord, error) {
	return r.getOne(ctx, fmt.Sprintf("top airport of %q", city),
		`SELECT `+airportColumns+` FROM airports
		 WHERE city = $1
		 ORDER BY city_airport DESC, id LIMIT 1`, city)
}

func (r *AirportRepository) FindByCity(ctx context.Context, city string) ([]domain.AirportRecord, error) {
	airports := []domain.AirportRecord{}
	err := r.db.SelectContext(ctx, &airports,
		`SELECT `+airportColumns+` FROM airports
		 WHERE city = $1 AND iata_code <> ''
		 ORDER BY id`, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports of %q: %w", city, err)
	}
	return airports, nil
}

func (r *AirportRepository) FirstClassCodes(ctx context.Context, excludeCode string) ([]string, error) {
	codes := []string{}
	err := r.db.SelectContext(ctx, &codes,
		`SELECT iata_code FROM airports
		 WHERE first_class AND NOT (iata_code = ANY($1))
		 ORDER BY id`, pq.Array([]string{"", excludeCode}))
	if err != nil {
		return nil, fmt.Errorf("failed to list first-class airports: %w", err)
	}
	return codes, nil
}

func (r *AirportRepository) SetFirstClass(ctx context.Context, codes []string) (int, error) {
	var flagged int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE airports SET first_class = FALSE
			 WHERE first_class AND NOT (iata_code = ANY($1))`, pq.Array(codes)); err != nil {
			return fmt.Errorf("failed to clear first-class airports: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE airports SET first_class = TRUE WHERE iata_code = ANY($1)`, pq.Array(codes))
		if err != nil {
			return fmt.Errorf("failed to flag first-class airports: %w", err)
		}
		flagged, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(flagged), nil
}

func (r *AirportRepository) getOne(ctx context.Context, what, query string, args ...any) (*domain.AirportRecord, error) {
	var airport domain.AirportRecord
	if err := r.db.GetContext(ctx, &airport, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, what)
		}
		return nil, fmt.Errorf("failed to load %s: %w", what, err)
	}
	return &airport, nil
}

var _ domain.AirportRepository = (*AirportRepository)(nil)
