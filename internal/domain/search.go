package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

// DefaultMaxPrice is the price cap (in USD) applied when a search does not set one.
const DefaultMaxPrice = 600

// SearchRequest describes one priced-itinerary search against QPX.
type SearchRequest struct {
	// Origin is the IATA code the outbound slice departs from (e.g., "NYC")
	Origin string

	// Destination is the IATA code the outbound slice arrives at (e.g., "LON")
	Destination string

	// OutboundDate is the travel date of the outbound slice
	OutboundDate time.Time

	// InboundDate is the travel date of the return slice; nil for one-way searches
	InboundDate *time.Time

	// Adults is the number of adult passengers
	Adults int

	// MaxPrice is the upper price bound in USD
	MaxPrice int

	// Solutions caps the number of trip options QPX returns
	Solutions int
}

// Slice is one directional leg of a requested itinerary.
type Slice struct {
	Origin      string
	Destination string
	Date        string
}

// airportCodeRegex matches IATA airport and metropolitan codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsAirportCode reports whether code looks like an IATA airport code.
func IsAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// Slices returns the outbound slice, followed by the mirrored return slice
// when an inbound date is set.
func (s *SearchRequest) Slices() []Slice {
	slices := []Slice{{
		Origin:      s.Origin,
		Destination: s.Destination,
		Date:        timeutil.FormatDate(s.OutboundDate),
	}}
	if s.InboundDate != nil {
		slices = append(slices, Slice{
			Origin:      s.Destination,
			Destination: s.Origin,
			Date:        timeutil.FormatDate(*s.InboundDate),
		})
	}
	return slices
}

// IsRoundTrip reports whether the request carries a return slice.
func (s *SearchRequest) IsRoundTrip() bool {
	return s.InboundDate != nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchRequest) SetDefaults() {
	if s.MaxPrice == 0 {
		s.MaxPrice = DefaultMaxPrice
	}
	if s.Adults == 0 {
		s.Adults = 1
	}
}

// Validate checks that the request can be sent to QPX.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchRequest) Validate() error {
	if !IsAirportCode(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}
	if !IsAirportCode(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}
	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	if s.OutboundDate.IsZero() {
		return fmt.Errorf("%w: outbound date is required", ErrInvalidRequest)
	}
	if s.InboundDate != nil && s.InboundDate.Before(s.OutboundDate) {
		return fmt.Errorf("%w: inbound date must not be before outbound date", ErrInvalidRequest)
	}
	if s.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidRequest)
	}
	if s.MaxPrice < 1 {
		return fmt.Errorf("%w: max price must be positive", ErrInvalidRequest)
	}
	if s.Solutions < 1 {
		return fmt.Errorf("%w: solutions must be positive", ErrInvalidRequest)
	}
	return nil
}
