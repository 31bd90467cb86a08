package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/gabrieltaylor/qpx/internal/adapter/http/response"
	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/usecase"
)

// TripHandler handles HTTP requests for trip search and listing endpoints.
type TripHandler struct {
	useCase usecase.TripSearchUseCase
}

// NewTripHandler creates a new TripHandler with the given use case.
func NewTripHandler(uc usecase.TripSearchUseCase) *TripHandler {
	return &TripHandler{
		useCase: uc,
	}
}

// SearchTrips handles POST /api/v1/trips/search
//
// @Summary Search one route
// @Description Query QPX for one origin/destination pair and store every trip that can be enriched
// @Tags trips
// @Accept json
// @Produce json
// @Param request body SearchTripsRequest true "Search criteria"
// @Success 200 {object} SearchSummaryDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "QPX failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /trips/search [post]
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	summary, err := h.useCase.SearchTrips(c.Request().Context(), ToSearchParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchSummaryDTO(summary))
}

// MultiSearchTrips handles POST /api/v1/trips/search/multi
//
// @Summary Search every first-class destination
// @Description Run one route search from the origin to each first-class airport
// @Tags trips
// @Accept json
// @Produce json
// @Param request body MultiSearchRequest true "Search criteria"
// @Success 200 {object} MultiSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /trips/search/multi [post]
func (h *TripHandler) MultiSearchTrips(c echo.Context) error {
	var req MultiSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	routes, err := h.useCase.MultiSearchTrips(c.Request().Context(), ToMultiSearchParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, MultiSearchResponseDTO{Origin: req.Origin, RoutesSearched: routes})
}

// SearchTripsByCity handles POST /api/v1/trips/search/city
//
// @Summary Search every first-class destination from a city
// @Description Run a multi-destination search from the city's "All Airports" entry, or from each of its airports
// @Tags trips
// @Accept json
// @Produce json
// @Param request body CitySearchRequest true "Search criteria"
// @Success 200 {object} MultiSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /trips/search/city [post]
func (h *TripHandler) SearchTripsByCity(c echo.Context) error {
	var req CitySearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	routes, err := h.useCase.MultiSearchTripsByCity(c.Request().Context(), ToCitySearchParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, MultiSearchResponseDTO{Origin: req.City, RoutesSearched: routes})
}

// ListTrips handles GET /api/v1/trips
//
// @Summary List stored trips
// @Tags trips
// @Produce json
// @Param from query string false "Departure airport code"
// @Param to query string false "Outbound destination airport code"
// @Param maxPrice query number false "Maximum price in USD"
// @Param maxStopover query int false "Maximum number of segments"
// @Param sortBy query string false "price, duration, departure or recent"
// @Param limit query int false "Maximum number of trips (1-500)"
// @Success 200 {object} TripsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /trips [get]
func (h *TripHandler) ListTrips(c echo.Context) error {
	query := ListTripsQuery{
		From:        c.QueryParam("from"),
		To:          c.QueryParam("to"),
		MaxPrice:    c.QueryParam("maxPrice"),
		MaxStopover: c.QueryParam("maxStopover"),
		SortBy:      c.QueryParam("sortBy"),
		Limit:       c.QueryParam("limit"),
	}
	filter, err := query.Validate()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	trips, err := h.useCase.ListTrips(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToTripsResponse(trips))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	// A timed out QPX call is both an upstream and a deadline error; report the timeout.
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrUpstreamFailed) || errors.Is(err, domain.ErrMalformedResponse) {
		return response.BadGateway(c)
	}

	return response.InternalServerError(c)
}
