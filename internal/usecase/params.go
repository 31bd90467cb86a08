// Package usecase contains the trip search pipeline: it drives QPX searches,
// enriches each returned option with reference data and stores the result.
package usecase

import (
	"time"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// SearchParams are the inputs of a single origin/destination search.
type SearchParams struct {
	Origin       string
	Destination  string
	OutboundDate time.Time

	// InboundDate makes the search a round trip when set
	InboundDate *time.Time

	Adults int

	// MaxPrice is the USD price cap; zero means domain.DefaultMaxPrice
	MaxPrice int
}

// MultiSearchParams are the inputs of a search from one origin to every first-class airport.
type MultiSearchParams struct {
	Origin       string
	OutboundDate time.Time
	InboundDate  *time.Time
	Adults       int
	MaxPrice     int
}

// CitySearchParams are the inputs of a multi-destination search from a city.
type CitySearchParams struct {
	City         string
	OutboundDate time.Time
	InboundDate  *time.Time
	Adults       int
	MaxPrice     int
}

func (p SearchParams) toRequest(solutions int) domain.SearchRequest {
	req := domain.SearchRequest{
		Origin:       p.Origin,
		Destination:  p.Destination,
		OutboundDate: p.OutboundDate,
		InboundDate:  p.InboundDate,
		Adults:       p.Adults,
		MaxPrice:     p.MaxPrice,
		Solutions:    solutions,
	}
	req.SetDefaults()
	return req
}

func (p MultiSearchParams) toSearch(destination string) SearchParams {
	return SearchParams{
		Origin:       p.Origin,
		Destination:  destination,
		OutboundDate: p.OutboundDate,
		InboundDate:  p.InboundDate,
		Adults:       p.Adults,
		MaxPrice:     p.MaxPrice,
	}
}

func (p CitySearchParams) fromAirport(code string) MultiSearchParams {
	return MultiSearchParams{
		Origin:       code,
		OutboundDate: p.OutboundDate,
		InboundDate:  p.InboundDate,
		Adults:       p.Adults,
		MaxPrice:     p.MaxPrice,
	}
}
