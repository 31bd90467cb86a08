package usecase

import (
	"context"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
)

// TripPersister stores normalized trips, treating uniqueness violations as benign.
type TripPersister struct {
	trips  domain.TripRepository
	logger *logger.Logger
}

// NewTripPersister creates a TripPersister.
func NewTripPersister(trips domain.TripRepository, log *logger.Logger) *TripPersister {
	if log == nil {
		log = logger.Nop()
	}
	return &TripPersister{trips: trips, logger: log}
}

// Persist inserts trip. A duplicate returns PersistDuplicate and a nil error;
// any other store failure is returned for this trip only.
func (p *TripPersister) Persist(ctx context.Context, trip *domain.NormalizedTrip) (domain.PersistOutcome, error) {
	err := p.trips.Insert(ctx, trip)
	if err == nil {
		return domain.PersistInserted, nil
	}
	if domain.IsDuplicateTrip(err) {
		p.logger.Info().
			Str("start_airport_code", trip.StartAirportCode).
			Str("end_airport_code", trip.EndAirportCode).
			Str("company", trip.Company).
			Float64("price", trip.Price).
			Msg("Trip already stored")
		return domain.PersistDuplicate, nil
	}
	return 0, err
}
