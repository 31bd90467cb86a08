package mock

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// AirportStore is an in-memory domain.AirportRepository.
// Like the PostgreSQL store it keeps IATA codes unique.
type AirportStore struct {
	mu       sync.RWMutex
	airports []domain.AirportRecord
	nextID   int64
}

// NewAirportStore creates an empty airport store.
func NewAirportStore() *AirportStore {
	return &AirportStore{}
}

func (s *AirportStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.airports), nil
}

func (s *AirportStore) InsertMany(ctx context.Context, airports []domain.AirportRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, a := range airports {
		if s.indexOf(a.IATACode) >= 0 {
			continue
		}
		s.nextID++
		a.ID = s.nextID
		s.airports = append(s.airports, a)
		inserted++
	}
	return inserted, nil
}

func (s *AirportStore) FindByCode(ctx context.Context, code string) (*domain.AirportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(code); i >= 0 {
		a := s.airports[i]
		return &a, nil
	}
	return nil, domain.ErrNotFound
}

func (s *AirportStore) FindCityAirport(ctx context.Context, city string) (*domain.AirportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.airports {
		if a.City == city && a.CityAirport {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *AirportStore) FindCityTopAirport(ctx context.Context, city string) (*domain.AirportRecord, error) {
	if a, err := s.FindCityAirport(ctx, city); err == nil {
		return a, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.airports {
		if a.City == city {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *AirportStore) FindByCity(ctx context.Context, city string) ([]domain.AirportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.AirportRecord
	for _, a := range s.airports {
		if a.City == city {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AirportStore) FirstClassCodes(ctx context.Context, excludeCode string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var codes []string
	for _, a := range s.airports {
		if a.FirstClass && a.IATACode != "" && a.IATACode != excludeCode {
			codes = append(codes, a.IATACode)
		}
	}
	return codes, nil
}

func (s *AirportStore) SetFirstClass(ctx context.Context, codes []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flagged := 0
	for i := range s.airports {
		s.airports[i].FirstClass = slices.Contains(codes, s.airports[i].IATACode)
		if s.airports[i].FirstClass {
			flagged++
		}
	}
	return flagged, nil
}

func (s *AirportStore) indexOf(code string) int {
	return slices.IndexFunc(s.airports, func(a domain.AirportRecord) bool {
		return a.IATACode == code
	})
}

// AirlineStore is an in-memory domain.AirlineRepository.
type AirlineStore struct {
	mu       sync.RWMutex
	airlines []domain.AirlineRecord
	nextID   int64
}

// NewAirlineStore creates an empty airline store.
func NewAirlineStore() *AirlineStore {
	return &AirlineStore{}
}

func (s *AirlineStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.airlines), nil
}

func (s *AirlineStore) InsertMany(ctx context.Context, airlines []domain.AirlineRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range airlines {
		s.nextID++
		a.ID = s.nextID
		s.airlines = append(s.airlines, a)
	}
	return len(airlines), nil
}

// FindByCode prefers active airlines when a code is shared.
func (s *AirlineStore) FindByCode(ctx context.Context, code string) (*domain.AirlineRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *domain.AirlineRecord
	for i := range s.airlines {
		a := s.airlines[i]
		if a.IATACode != code {
			continue
		}
		if found == nil || (a.Active && !found.Active) {
			found = &a
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

// TripStore is an in-memory domain.TripRepository enforcing trip identity uniqueness.
type TripStore struct {
	mu        sync.RWMutex
	trips     []domain.NormalizedTrip
	nextID    int64
	insertErr error
}

// NewTripStore creates an empty trip store.
func NewTripStore() *TripStore {
	return &TripStore{}
}

// WithInsertError makes every Insert fail with err.
func (s *TripStore) WithInsertError(err error) *TripStore {
	s.insertErr = err
	return s
}

func (s *TripStore) Insert(ctx context.Context, trip *domain.NormalizedTrip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.insertErr != nil {
		return s.insertErr
	}
	for i := range s.trips {
		if sameIdentity(&s.trips[i], trip) {
			return domain.ErrDuplicateTrip
		}
	}

	s.nextID++
	trip.ID = s.nextID
	s.trips = append(s.trips, *trip)
	return nil
}

func (s *TripStore) List(ctx context.Context, filter domain.TripFilter) ([]domain.NormalizedTrip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.NormalizedTrip
	for _, t := range s.trips {
		if filter.StartAirportCode != "" && t.StartAirportCode != filter.StartAirportCode {
			continue
		}
		if filter.EndAirportCode != "" && t.EndAirportCode != filter.EndAirportCode {
			continue
		}
		if filter.MaxPrice != nil && t.Price > *filter.MaxPrice {
			continue
		}
		if filter.MaxStopover != nil && t.Stopover > *filter.MaxStopover {
			continue
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, tripOrder(filter.SortBy))
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// All returns every stored trip in insertion order.
func (s *TripStore) All() []domain.NormalizedTrip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.trips)
}

func tripOrder(sortBy domain.SortOption) func(a, b domain.NormalizedTrip) int {
	return func(a, b domain.NormalizedTrip) int {
		var c int
		switch sortBy {
		case domain.SortByDuration:
			c = cmp.Compare(a.Duration, b.Duration)
		case domain.SortByDeparture:
			c = a.Departure.Compare(b.Departure)
		case domain.SortBySearchDate:
			if c = b.SearchDate.Compare(a.SearchDate); c == 0 {
				return cmp.Compare(b.ID, a.ID)
			}
			return c
		default:
			c = cmp.Compare(a.Price, b.Price)
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	}
}

func sameIdentity(a, b *domain.NormalizedTrip) bool {
	return a.StartAirportCode == b.StartAirportCode &&
		a.EndAirportCode == b.EndAirportCode &&
		a.Price == b.Price &&
		a.Departure.Equal(b.Departure) &&
		a.Arrival.Equal(b.Arrival) &&
		a.Stopover == b.Stopover &&
		a.Company == b.Company
}

// Ensure the stores implement the repositories at compile time.
var (
	_ domain.AirportRepository = (*AirportStore)(nil)
	_ domain.AirlineRepository = (*AirlineStore)(nil)
	_ domain.TripRepository    = (*TripStore)(nil)
)
