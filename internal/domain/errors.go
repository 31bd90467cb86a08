package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the search-and-normalization pipeline.
var (
	// ErrInvalidRequest indicates the caller supplied unusable search parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates a reference record does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamFailed indicates the QPX call failed or returned a non-200 status.
	ErrUpstreamFailed = errors.New("upstream search failed")

	// ErrMalformedResponse indicates the QPX body could not be decoded.
	ErrMalformedResponse = errors.New("malformed search response")

	// ErrMalformedOption indicates a single trip option lacks the data needed to derive a trip.
	ErrMalformedOption = errors.New("malformed trip option")

	// ErrEnrichmentFailed indicates reference data needed to enrich a trip is missing.
	ErrEnrichmentFailed = errors.New("enrichment failed")

	// ErrDuplicateTrip indicates the trip store already holds an identical trip.
	ErrDuplicateTrip = errors.New("duplicate trip")
)

// UpstreamError describes a failed QPX exchange.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by QPX; zero when no response was received
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d", ErrUpstreamFailed, e.StatusCode)
	}
	if e.Err == nil {
		return ErrUpstreamFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrUpstreamFailed, e.Err)
}

// Unwrap exposes both the sentinel and the transport error to errors.Is.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamFailed}
	}
	return []error{ErrUpstreamFailed, e.Err}
}

// NewUpstreamStatusError creates an UpstreamError for a non-200 response.
func NewUpstreamStatusError(statusCode int) error {
	return &UpstreamError{StatusCode: statusCode}
}

// NewUpstreamError wraps a transport failure.
func NewUpstreamError(err error) error {
	return &UpstreamError{Err: err}
}

// ValidationError reports a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes validation errors match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message wrapped with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUpstreamFailed reports whether err is a QPX failure.
func IsUpstreamFailed(err error) bool {
	return errors.Is(err, ErrUpstreamFailed)
}

// IsEnrichmentFailed reports whether err is a missing reference data error.
func IsEnrichmentFailed(err error) bool {
	return errors.Is(err, ErrEnrichmentFailed)
}

// IsDuplicateTrip reports whether err is a trip uniqueness violation.
func IsDuplicateTrip(err error) bool {
	return errors.Is(err, ErrDuplicateTrip)
}
