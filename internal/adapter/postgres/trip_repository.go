package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

const tripColumns = `id, start_city, start_country, end_city, end_country, price, places_available,
	departure, arrival, stopover, company, start_airport, start_airport_code, end_airport,
	end_airport_code, longitude, latitude, start_time, end_time, duration, search_date,
	airport_id, about, title, type, lowcost, preferred`

const insertTripSQL = `
INSERT INTO trips
	(start_city, start_country, end_city, end_country, price, places_available,
	 departure, arrival, stopover, company, start_airport, start_airport_code, end_airport,
	 end_airport_code, longitude, latitude, start_time, end_time, duration, search_date,
	 airport_id, about, title, type, lowcost, preferred)
VALUES
	(:start_city, :start_country, :end_city, :end_country, :price, :places_available,
	 :departure, :arrival, :stopover, :company, :start_airport, :start_airport_code, :end_airport,
	 :end_airport_code, :longitude, :latitude, :start_time, :end_time, :duration, :search_date,
	 :airport_id, :about, :title, :type, :lowcost, :preferred)
RETURNING id`

var tripOrderBy = map[domain.SortOption]string{
	domain.SortByPrice:      "price ASC, id ASC",
	domain.SortByDuration:   "duration ASC, id ASC",
	domain.SortByDeparture:  "departure ASC, id ASC",
	domain.SortBySearchDate: "search_date DESC, id DESC",
}

// TripRepository implements domain.TripRepository.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository creates a trip repository.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Insert stores trip and sets its ID. The unique index on the trip identity
// turns a repeated trip into domain.ErrDuplicateTrip.
func (r *TripRepository) Insert(ctx context.Context, trip *domain.NormalizedTrip) error {
	query, args, err := r.db.BindNamed(insertTripSQL, trip)
	if err != nil {
		return fmt.Errorf("failed to bind trip insert: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&trip.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s-%s %s at %.2f", domain.ErrDuplicateTrip,
				trip.StartAirportCode, trip.EndAirportCode, trip.Company, trip.Price)
		}
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

func (r *TripRepository) List(ctx context.Context, filter domain.TripFilter) ([]domain.NormalizedTrip, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.StartAirportCode != "" {
		conditions = append(conditions, "start_airport_code = ?")
		args = append(args, filter.StartAirportCode)
	}
	if filter.EndAirportCode != "" {
		conditions = append(conditions, "end_airport_code = ?")
		args = append(args, filter.EndAirportCode)
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	if filter.MaxStopover != nil {
		conditions = append(conditions, "stopover <= ?")
		args = append(args, *filter.MaxStopover)
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + tripColumns + " FROM trips")
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	orderBy, ok := tripOrderBy[filter.SortBy]
	if !ok {
		orderBy = tripOrderBy[domain.SortByPrice]
	}
	sb.WriteString(" ORDER BY " + orderBy)

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultTripLimit
	}
	sb.WriteString(" LIMIT ?")
	args = append(args, limit)

	trips := []domain.NormalizedTrip{}
	if err := r.db.SelectContext(ctx, &trips, r.db.Rebind(sb.String()), args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

var _ domain.TripRepository = (*TripRepository)(nil)
