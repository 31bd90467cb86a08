// Package http provides the HTTP handler layer for the trips API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

// Passenger bounds accepted by QPX.
const (
	minAdults = 1
	maxAdults = 9
)

// TravelDTO carries the dates, party size and price cap shared by every search request.
type TravelDTO struct {
	// OutboundDate is the outbound travel date in YYYY-MM-DD format
	OutboundDate string `json:"outboundDate" example:"2026-11-20"`

	// InboundDate is the return date in YYYY-MM-DD format; omit for one-way searches
	InboundDate string `json:"inboundDate,omitempty" example:"2026-11-27"`

	// Adults is the number of adult passengers (1-9, defaults to 1)
	Adults int `json:"adults,omitempty" example:"1"`

	// MaxPrice is the USD price cap (defaults to 600)
	MaxPrice int `json:"maxPrice,omitempty" example:"600"`

	outbound time.Time
	inbound  *time.Time
}

// SearchTripsRequest represents the request body for a single route search.
type SearchTripsRequest struct {
	// Origin is the IATA code of the departure airport or city (e.g., "NYC")
	Origin string `json:"origin" example:"NYC"`

	// Destination is the IATA code of the arrival airport or city (e.g., "LON")
	Destination string `json:"destination" example:"LON"`

	TravelDTO
}

// MultiSearchRequest represents the request body for a search from one origin
// to every first-class airport.
type MultiSearchRequest struct {
	Origin string `json:"origin" example:"JFK"`

	TravelDTO
}

// CitySearchRequest represents the request body for a multi-destination search from a city.
type CitySearchRequest struct {
	// City is the city name as spelled in the airports reference data (e.g., "London")
	City string `json:"city" example:"London"`

	TravelDTO
}

// ListTripsQuery holds the raw query parameters of GET /api/v1/trips.
type ListTripsQuery struct {
	From        string
	To          string
	MaxPrice    string
	MaxStopover string
	SortBy      string
	Limit       string
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid sort options.
var validSortOptions = map[string]bool{
	string(domain.SortByPrice):      true,
	string(domain.SortByDuration):   true,
	string(domain.SortByDeparture):  true,
	string(domain.SortBySearchDate): true,
	"":                              true, // Empty is valid (defaults to price)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate validates the search request and returns any validation errors.
func (r *SearchTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateAirportCode(errs, "origin", r.Origin)
	r.Destination = validateAirportCode(errs, "destination", r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
	r.TravelDTO.validate(errs)

	return errs.orNil()
}

// Validate validates the multi-destination request.
func (r *MultiSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateAirportCode(errs, "origin", r.Origin)
	r.TravelDTO.validate(errs)

	return errs.orNil()
}

// Validate validates the city search request.
func (r *CitySearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.City = strings.TrimSpace(r.City)
	if r.City == "" {
		errs.Add("city", "city is required")
	}
	r.TravelDTO.validate(errs)

	return errs.orNil()
}

// validateAirportCode returns the uppercased code, or the input unchanged when invalid.
func validateAirportCode(errs *ValidationErrors, field, code string) string {
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !airportCodePattern.MatchString(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA code")
		return code
	}
	return normalized
}

func (t *TravelDTO) validate(errs *ValidationErrors) {
	t.validateOutboundDate(errs)
	t.validateInboundDate(errs)

	if t.Adults < 0 {
		errs.Add("adults", "adults must be at least 1")
	} else if t.Adults > maxAdults {
		errs.Add("adults", fmt.Sprintf("adults cannot exceed %d", maxAdults))
	}

	if t.MaxPrice < 0 {
		errs.Add("maxPrice", "maxPrice must be a positive number")
	}
}

func (t *TravelDTO) validateOutboundDate(errs *ValidationErrors) {
	if t.OutboundDate == "" {
		errs.Add("outboundDate", "outboundDate is required")
		return
	}
	if !datePattern.MatchString(t.OutboundDate) {
		errs.Add("outboundDate", "outboundDate must be in YYYY-MM-DD format")
		return
	}

	outbound, err := timeutil.ParseDate(t.OutboundDate)
	if err != nil {
		errs.Add("outboundDate", "outboundDate is not a valid date")
		return
	}
	t.outbound = outbound
}

func (t *TravelDTO) validateInboundDate(errs *ValidationErrors) {
	if t.InboundDate == "" {
		return
	}
	if !datePattern.MatchString(t.InboundDate) {
		errs.Add("inboundDate", "inboundDate must be in YYYY-MM-DD format")
		return
	}

	inbound, err := timeutil.ParseOptionalDate(t.InboundDate)
	if err != nil {
		errs.Add("inboundDate", "inboundDate is not a valid date")
		return
	}
	if !t.outbound.IsZero() && inbound.Before(t.outbound) {
		errs.Add("inboundDate", "inboundDate must not be before outboundDate")
		return
	}
	t.inbound = inbound
}

// adults returns the passenger count with the default applied.
func (t *TravelDTO) adults() int {
	if t.Adults == 0 {
		return minAdults
	}
	return t.Adults
}

// Validate parses and validates the listing query parameters.
func (q *ListTripsQuery) Validate() (domain.TripFilter, error) {
	errs := &ValidationErrors{}
	filter := domain.TripFilter{}

	if q.From != "" {
		filter.StartAirportCode = validateAirportCode(errs, "from", q.From)
	}
	if q.To != "" {
		filter.EndAirportCode = validateAirportCode(errs, "to", q.To)
	}

	if q.MaxPrice != "" {
		maxPrice, err := strconv.ParseFloat(q.MaxPrice, 64)
		if err != nil || maxPrice < 0 {
			errs.Add("maxPrice", "maxPrice must be a positive number")
		} else {
			filter.MaxPrice = &maxPrice
		}
	}

	if q.MaxStopover != "" {
		maxStopover, err := strconv.Atoi(q.MaxStopover)
		if err != nil || maxStopover < 0 {
			errs.Add("maxStopover", "maxStopover must be a non-negative integer")
		} else {
			filter.MaxStopover = &maxStopover
		}
	}

	sortBy := strings.ToLower(q.SortBy)
	if !validSortOptions[sortBy] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure, recent")
	} else {
		filter.SortBy = domain.ParseSortOption(sortBy)
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil || limit < 1 || limit > domain.MaxTripLimit {
			errs.Add("limit", fmt.Sprintf("limit must be between 1 and %d", domain.MaxTripLimit))
		} else {
			filter.Limit = limit
		}
	}

	if errs.HasErrors() {
		return domain.TripFilter{}, errs
	}
	return filter, nil
}
