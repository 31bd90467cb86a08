package domain

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

import "context"

// AirportRepository is the airport side of the reference data store.
type AirportRepository interface {
	// Count returns the number of stored airports.
	Count(ctx context.Context) (int, error)

	// InsertMany stores airports and returns how many rows were added.
	// Rows whose IATA code is already stored are skipped.
	InsertMany(ctx context.Context, airports []AirportRecord) (int, error)

	// FindByCode returns the airport with the given IATA code or ErrNotFound.
	FindByCode(ctx context.Context, code string) (*AirportRecord, error)

	// FindCityAirport returns the city-representative airport of a city or ErrNotFound.
	FindCityAirport(ctx context.Context, city string) (*AirportRecord, error)

	// FindCityTopAirport returns the city-representative airport of a city,
	// falling back to any airport in that city. Returns ErrNotFound when the city has none.
	FindCityTopAirport(ctx context.Context, city string) (*AirportRecord, error)

	// FindByCity returns every airport of a city with a non-blank IATA code.
	FindByCity(ctx context.Context, city string) ([]AirportRecord, error)

	// FirstClassCodes returns the IATA codes of first-class airports except excludeCode.
	FirstClassCodes(ctx context.Context, excludeCode string) ([]string, error)

	// SetFirstClass flags exactly the airports with the given IATA codes as first-class,
	// clearing the flag on every other airport. Returns how many airports were flagged.
	SetFirstClass(ctx context.Context, codes []string) (int, error)
}

// AirlineRepository is the airline side of the reference data store.
type AirlineRepository interface {
	// Count returns the number of stored airlines.
	Count(ctx context.Context) (int, error)

	// InsertMany stores airlines and returns how many rows were added.
	InsertMany(ctx context.Context, airlines []AirlineRecord) (int, error)

	// FindByCode returns the airline with the given IATA code or ErrNotFound.
	FindByCode(ctx context.Context, code string) (*AirlineRecord, error)
}

// TripRepository is the trip store.
type TripRepository interface {
	// Insert stores a trip, setting its ID. Returns ErrDuplicateTrip on a uniqueness violation.
	Insert(ctx context.Context, trip *NormalizedTrip) error

	// List returns stored trips matching the filter.
	List(ctx context.Context, filter TripFilter) ([]NormalizedTrip, error)
}

// TripSearchProvider runs a priced-itinerary search and returns the raw trip options.
type TripSearchProvider interface {
	// Name returns the provider identifier used in logs.
	Name() string

	// SearchTrips returns the options of one search. A search with no results
	// returns an empty slice and a nil error; a failed exchange returns ErrUpstreamFailed.
	SearchTrips(ctx context.Context, req SearchRequest) ([]RawTripOption, error)
}
