package domain

import "fmt"

// Trip listing limits.
const (
	DefaultTripLimit = 50
	MaxTripLimit     = 500
)

// SortOption defines the available orderings for stored trips.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by total duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"

	// SortBySearchDate sorts by search date descending (most recent first)
	SortBySearchDate SortOption = "recent"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture, SortBySearchDate:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// TripFilter selects stored trips.
type TripFilter struct {
	// StartAirportCode restricts trips to one departure airport
	StartAirportCode string

	// EndAirportCode restricts trips to one outbound destination
	EndAirportCode string

	// MaxPrice filters out trips priced above this amount
	MaxPrice *float64

	// MaxStopover filters out trips with more segments than this value
	MaxStopover *int

	SortBy SortOption

	// Limit caps the number of returned trips (DefaultTripLimit when zero)
	Limit int
}

// SetDefaults applies default values to empty optional fields.
func (f *TripFilter) SetDefaults() {
	if !f.SortBy.IsValid() {
		f.SortBy = SortByPrice
	}
	if f.Limit == 0 {
		f.Limit = DefaultTripLimit
	}
}

// Validate checks the filter bounds.
func (f *TripFilter) Validate() error {
	if f.StartAirportCode != "" && !IsAirportCode(f.StartAirportCode) {
		return NewValidationError("from", fmt.Sprintf("must be a valid 3-letter IATA code, got %q", f.StartAirportCode))
	}
	if f.EndAirportCode != "" && !IsAirportCode(f.EndAirportCode) {
		return NewValidationError("to", fmt.Sprintf("must be a valid 3-letter IATA code, got %q", f.EndAirportCode))
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return NewValidationError("maxPrice", "must not be negative")
	}
	if f.MaxStopover != nil && *f.MaxStopover < 0 {
		return NewValidationError("maxStopover", "must not be negative")
	}
	if f.Limit < 0 || f.Limit > MaxTripLimit {
		return NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxTripLimit))
	}
	return nil
}
