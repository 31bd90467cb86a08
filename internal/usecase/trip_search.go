package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

// Default configuration values.
const (
	DefaultSolutions       = 3
	DefaultPlacesAvailable = 5
)

// TripSearchUseCase defines the trip search operations.
type TripSearchUseCase interface {
	// SearchTrips runs one QPX search and stores every option it can enrich.
	// An upstream failure is returned as domain.ErrUpstreamFailed with nothing stored.
	SearchTrips(ctx context.Context, params SearchParams) (*domain.SearchSummary, error)

	// MultiSearchTrips searches from the origin to every first-class airport
	// and returns the number of destinations searched.
	MultiSearchTrips(ctx context.Context, params MultiSearchParams) (int, error)

	// MultiSearchTripsByCity runs MultiSearchTrips from the city's representative
	// airport, or from each of its airports when it has none, and returns the
	// total number of destinations searched.
	MultiSearchTripsByCity(ctx context.Context, params CitySearchParams) (int, error)

	// ListTrips returns stored trips.
	ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.NormalizedTrip, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// Solutions caps the trip options requested per search
	Solutions int

	// PlacesAvailable is recorded on every stored trip
	PlacesAvailable int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Solutions:       DefaultSolutions,
		PlacesAvailable: DefaultPlacesAvailable,
	}
}

// Dependencies are the collaborators of the use case.
type Dependencies struct {
	Provider domain.TripSearchProvider
	Airports domain.AirportRepository
	Airlines domain.AirlineRepository
	Trips    domain.TripRepository

	// Clock stamps the search date; defaults to the system clock
	Clock timeutil.Clock

	Logger *logger.Logger
}

type tripSearchUseCase struct {
	provider        domain.TripSearchProvider
	airports        domain.AirportRepository
	trips           domain.TripRepository
	resolver        *RouteResolver
	persister       *TripPersister
	clock           timeutil.Clock
	logger          *logger.Logger
	solutions       int
	placesAvailable int
}

// NewTripSearchUseCase creates a TripSearchUseCase.
// If config is nil, default values are used.
func NewTripSearchUseCase(deps Dependencies, config *Config) TripSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Solutions > 0 {
			cfg.Solutions = config.Solutions
		}
		if config.PlacesAvailable >= 0 {
			cfg.PlacesAvailable = config.PlacesAvailable
		}
	}

	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("trip_search")

	return &tripSearchUseCase{
		provider:        deps.Provider,
		airports:        deps.Airports,
		trips:           deps.Trips,
		resolver:        NewRouteResolver(deps.Airports, deps.Airlines),
		persister:       NewTripPersister(deps.Trips, log),
		clock:           clock,
		logger:          log,
		solutions:       cfg.Solutions,
		placesAvailable: cfg.PlacesAvailable,
	}
}

func (uc *tripSearchUseCase) SearchTrips(ctx context.Context, params SearchParams) (*domain.SearchSummary, error) {
	req := params.toRequest(uc.solutions)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := uc.logger.Ctx(ctx).WithRoute(req.Origin, req.Destination)

	options, err := uc.provider.SearchTrips(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("provider", uc.provider.Name()).Msg("Trip search failed")
		return nil, fmt.Errorf("search %s-%s: %w", req.Origin, req.Destination, err)
	}

	summary := &domain.SearchSummary{
		Origin:      req.Origin,
		Destination: req.Destination,
		Options:     len(options),
	}
	searchDate := uc.clock.Now()

	for i := range options {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		uc.processOption(ctx, log, &options[i], searchDate, summary)
	}

	log.Info().
		Int("options", summary.Options).
		Int("inserted", summary.Inserted).
		Int("duplicates", summary.Duplicates).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Trip search completed")

	return summary, nil
}

// processOption derives, resolves and persists one option, recording the outcome in summary.
func (uc *tripSearchUseCase) processOption(ctx context.Context, log *logger.Logger, option *domain.RawTripOption, searchDate time.Time, summary *domain.SearchSummary) {
	attrs, err := option.Derive()
	if err != nil {
		summary.Skipped++
		log.Warn().Err(err).Str("sale_total", option.SaleTotal).Msg("Skipping malformed trip option")
		return
	}

	route, err := uc.resolver.Resolve(ctx, attrs.StartAirportCode, attrs.EndAirportCode, attrs.Carrier)
	if err != nil {
		var event *zerolog.Event
		if domain.IsEnrichmentFailed(err) {
			summary.Skipped++
			event = log.Warn()
		} else {
			summary.Failed++
			event = log.Error()
		}
		event.Err(err).
			Str("start_airport_code", attrs.StartAirportCode).
			Str("end_airport_code", attrs.EndAirportCode).
			Str("carrier", attrs.Carrier).
			Msg("Skipping trip option without reference data")
		return
	}

	trip := domain.NewNormalizedTrip(attrs, route, uc.placesAvailable, searchDate)
	outcome, err := uc.persister.Persist(ctx, &trip)
	if err != nil {
		summary.Failed++
		log.Error().Err(err).
			Str("start_airport_code", trip.StartAirportCode).
			Str("end_airport_code", trip.EndAirportCode).
			Msg("Failed to store trip")
		return
	}

	switch outcome {
	case domain.PersistInserted:
		summary.Inserted++
	case domain.PersistDuplicate:
		summary.Duplicates++
	}
}

func (uc *tripSearchUseCase) MultiSearchTrips(ctx context.Context, params MultiSearchParams) (int, error) {
	if !domain.IsAirportCode(params.Origin) {
		return 0, domain.NewValidationError("origin", "must be a valid 3-letter IATA code")
	}

	destinations, err := uc.airports.FirstClassCodes(ctx, params.Origin)
	if err != nil {
		return 0, err
	}

	log := uc.logger.Ctx(ctx)
	for i, destination := range destinations {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		log.Info().Msgf("Searching %s --> %s ...", params.Origin, destination)
		if _, err := uc.SearchTrips(ctx, params.toSearch(destination)); err != nil {
			log.Warn().Err(err).
				Str("origin", params.Origin).
				Str("destination", destination).
				Msg("Destination search failed, continuing")
		}
	}

	log.Info().Str("origin", params.Origin).Msgf("Done. %d routes searched.", len(destinations))
	return len(destinations), nil
}

func (uc *tripSearchUseCase) MultiSearchTripsByCity(ctx context.Context, params CitySearchParams) (int, error) {
	if params.City == "" {
		return 0, domain.NewValidationError("city", "is required")
	}

	cityAirport, err := uc.airports.FindCityAirport(ctx, params.City)
	if err == nil {
		return uc.MultiSearchTrips(ctx, params.fromAirport(cityAirport.IATACode))
	}
	if !domain.IsNotFound(err) {
		return 0, err
	}

	airports, err := uc.airports.FindByCity(ctx, params.City)
	if err != nil {
		return 0, err
	}
	if len(airports) == 0 {
		uc.logger.Ctx(ctx).Warn().Str("city", params.City).Msg("City has no airports")
		return 0, nil
	}

	total := 0
	for _, airport := range airports {
		n, err := uc.MultiSearchTrips(ctx, params.fromAirport(airport.IATACode))
		total += n
		if err != nil {
			if ctx.Err() != nil {
				return total, err
			}
			uc.logger.Ctx(ctx).Warn().Err(err).
				Str("city", params.City).
				Str("origin", airport.IATACode).
				Msg("Airport search failed, continuing")
		}
	}
	return total, nil
}

func (uc *tripSearchUseCase) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.NormalizedTrip, error) {
	filter.SetDefaults()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return uc.trips.List(ctx, filter)
}

var _ TripSearchUseCase = (*tripSearchUseCase)(nil)
