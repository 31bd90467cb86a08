package qpx

import (
	"fmt"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// TripsFields restricts the QPX response to the parts the normalizer reads.
const TripsFields = "trips/tripOption(saleTotal,slice(duration,segment))"

// SaleCountry is the point-of-sale country sent with every search.
const SaleCountry = "USA"

// TripsSearchRequest is the JSON body of a trips/search call.
type TripsSearchRequest struct {
	Request TripsRequest `json:"request"`
}

// TripsRequest holds the itinerary and pricing constraints.
type TripsRequest struct {
	Slice       []SliceInput `json:"slice"`
	Passengers  Passengers   `json:"passengers"`
	MaxPrice    string       `json:"maxPrice"`
	SaleCountry string       `json:"saleCountry"`
	Solutions   int          `json:"solutions"`
	Refundable  bool         `json:"refundable"`
}

// SliceInput is one requested direction of travel.
type SliceInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Passengers counts travellers by category.
type Passengers struct {
	AdultCount        int `json:"adultCount"`
	InfantInLapCount  int `json:"infantInLapCount"`
	InfantInSeatCount int `json:"infantInSeatCount"`
	ChildCount        int `json:"childCount"`
	SeniorCount       int `json:"seniorCount"`
}

// NewTripsSearchRequest builds the wire body for req.
func NewTripsSearchRequest(req domain.SearchRequest) TripsSearchRequest {
	slices := req.Slices()
	input := make([]SliceInput, 0, len(slices))
	for _, s := range slices {
		input = append(input, SliceInput{
			Origin:      s.Origin,
			Destination: s.Destination,
			Date:        s.Date,
		})
	}

	return TripsSearchRequest{
		Request: TripsRequest{
			Slice:       input,
			Passengers:  Passengers{AdultCount: req.Adults},
			MaxPrice:    fmt.Sprintf("%s%d", domain.PriceCurrency, req.MaxPrice),
			SaleCountry: SaleCountry,
			Solutions:   req.Solutions,
			Refundable:  false,
		},
	}
}
