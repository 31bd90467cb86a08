package http

import (
	"time"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/usecase"
)

// ToSearchParams converts a validated SearchTripsRequest to usecase.SearchParams.
func ToSearchParams(req *SearchTripsRequest) usecase.SearchParams {
	return usecase.SearchParams{
		Origin:       req.Origin,
		Destination:  req.Destination,
		OutboundDate: req.outbound,
		InboundDate:  req.inbound,
		Adults:       req.adults(),
		MaxPrice:     req.MaxPrice,
	}
}

// ToMultiSearchParams converts a validated MultiSearchRequest to usecase.MultiSearchParams.
func ToMultiSearchParams(req *MultiSearchRequest) usecase.MultiSearchParams {
	return usecase.MultiSearchParams{
		Origin:       req.Origin,
		OutboundDate: req.outbound,
		InboundDate:  req.inbound,
		Adults:       req.adults(),
		MaxPrice:     req.MaxPrice,
	}
}

// ToCitySearchParams converts a validated CitySearchRequest to usecase.CitySearchParams.
func ToCitySearchParams(req *CitySearchRequest) usecase.CitySearchParams {
	return usecase.CitySearchParams{
		City:         req.City,
		OutboundDate: req.outbound,
		InboundDate:  req.inbound,
		Adults:       req.adults(),
		MaxPrice:     req.MaxPrice,
	}
}

// ToSearchSummaryDTO converts a domain.SearchSummary to its response form.
func ToSearchSummaryDTO(s *domain.SearchSummary) SearchSummaryDTO {
	return SearchSummaryDTO{
		Origin:      s.Origin,
		Destination: s.Destination,
		Options:     s.Options,
		Inserted:    s.Inserted,
		Duplicates:  s.Duplicates,
		Skipped:     s.Skipped,
		Failed:      s.Failed,
	}
}

// ToTripsResponse converts stored trips to the listing response.
func ToTripsResponse(trips []domain.NormalizedTrip) TripsResponseDTO {
	dtos := make([]TripDTO, len(trips))
	for i := range trips {
		dtos[i] = ToTripDTO(&trips[i])
	}
	return TripsResponseDTO{
		Count: len(dtos),
		Trips: dtos,
	}
}

// ToTripDTO converts a domain.NormalizedTrip to a TripDTO.
// Times keep the UTC offset QPX reported for the airport.
func ToTripDTO(t *domain.NormalizedTrip) TripDTO {
	return TripDTO{
		ID:              t.ID,
		Type:            t.Type,
		Company:         t.Company,
		Price:           t.Price,
		PlacesAvailable: t.PlacesAvailable,
		Stopover:        t.Stopover,
		Duration:        t.Duration,
		Departure:       t.Departure.Format(time.RFC3339),
		Arrival:         t.Arrival.Format(time.RFC3339),
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		Start: TripEndpointDTO{
			AirportCode: t.StartAirportCode,
			Airport:     t.StartAirport,
			City:        t.StartCity,
			Country:     t.StartCountry,
		},
		End: TripEndpointDTO{
			AirportCode: t.EndAirportCode,
			Airport:     t.EndAirport,
			City:        t.EndCity,
			Country:     t.EndCountry,
		},
		Coordinates: [2]float64{t.Longitude, t.Latitude},
		AirportID:   t.AirportID,
		SearchDate:  t.SearchDate.UTC().Format(time.RFC3339),
		LowCost:     t.LowCost,
		Preferred:   t.Preferred,
	}
}
