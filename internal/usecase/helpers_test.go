package usecase

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

var (
	searchTime   = time.Date(2016, 4, 1, 12, 0, 0, 0, time.UTC)
	outboundDate = time.Date(2016, 4, 30, 0, 0, 0, 0, time.UTC)
)

// testMocks bundles the collaborators of the use case under test.
type testMocks struct {
	provider *domain.MockTripSearchProvider
	airports *domain.MockAirportRepository
	airlines *domain.MockAirlineRepository
	trips    *domain.MockTripRepository
	clock    *timeutil.MockClock
}

func newTestUseCase(ctrl *gomock.Controller) (TripSearchUseCase, *testMocks) {
	m := &testMocks{
		provider: domain.NewMockTripSearchProvider(ctrl),
		airports: domain.NewMockAirportRepository(ctrl),
		airlines: domain.NewMockAirlineRepository(ctrl),
		trips:    domain.NewMockTripRepository(ctrl),
		clock:    timeutil.NewMockClock(searchTime),
	}
	m.provider.EXPECT().Name().Return("qpx_test").AnyTimes()

	uc := NewTripSearchUseCase(Dependencies{
		Provider: m.provider,
		Airports: m.airports,
		Airlines: m.airlines,
		Trips:    m.trips,
		Clock:    m.clock,
		Logger:   logger.Nop(),
	}, &Config{Solutions: 3, PlacesAvailable: 5})

	return uc, m
}

// createTestOption builds a one-way, one-segment option.
func createTestOption(origin, destination, carrier, saleTotal string) domain.RawTripOption {
	return domain.RawTripOption{
		SaleTotal: saleTotal,
		Slices: []domain.TripSlice{{
			Duration: 445,
			Segments: []domain.TripSegment{{
				Carrier: carrier,
				Legs: []domain.TripLeg{{
					Origin:        origin,
					Destination:   destination,
					DepartureTime: "2016-04-30T19:30-04:00",
					ArrivalTime:   "2016-05-01T07:15+01:00",
				}},
			}},
		}},
	}
}

var (
	jfk = domain.AirportRecord{ID: 3797, IATACode: "JFK", Name: "John F Kennedy Intl", City: "New York", Country: "United States"}
	lhr = domain.AirportRecord{ID: 507, IATACode: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom"}
	lon = domain.AirportRecord{ID: 9000, IATACode: "LON", Name: "All Airports", City: "London", Country: "United Kingdom",
		Latitude: 51.5072, Longitude: -0.1276, CityAirport: true}
	britishAirways = domain.AirlineRecord{ID: 1355, Name: "British Airways", IATACode: "BA", Active: true}
)

// expectResolvable makes JFK->LHR on BA resolvable any number of times.
func (m *testMocks) expectResolvable() {
	m.airports.EXPECT().FindByCode(gomock.Any(), "JFK").Return(&jfk, nil).AnyTimes()
	m.airports.EXPECT().FindByCode(gomock.Any(), "LHR").Return(&lhr, nil).AnyTimes()
	m.airlines.EXPECT().FindByCode(gomock.Any(), "BA").Return(&britishAirways, nil).AnyTimes()
	m.airports.EXPECT().FindCityTopAirport(gomock.Any(), "London").Return(&lon, nil).AnyTimes()
}
