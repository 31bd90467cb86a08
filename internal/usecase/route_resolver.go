package usecase

import (
	"context"
	"fmt"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// RouteResolver looks up the reference data a trip needs.
type RouteResolver struct {
	airports domain.AirportRepository
	airlines domain.AirlineRepository
}

// NewRouteResolver creates a RouteResolver.
func NewRouteResolver(airports domain.AirportRepository, airlines domain.AirlineRepository) *RouteResolver {
	return &RouteResolver{airports: airports, airlines: airlines}
}

// Resolve returns the start and end airports, the operating company and the
// top airport of the end city. Missing reference data yields
// domain.ErrEnrichmentFailed; store failures are returned as they are.
func (r *RouteResolver) Resolve(ctx context.Context, startCode, endCode, carrier string) (*domain.ResolvedRoute, error) {
	start, err := r.airports.FindByCode(ctx, startCode)
	if err != nil {
		return nil, enrichmentError(err, "start airport %q", startCode)
	}

	end, err := r.airports.FindByCode(ctx, endCode)
	if err != nil {
		return nil, enrichmentError(err, "end airport %q", endCode)
	}

	airline, err := r.airlines.FindByCode(ctx, carrier)
	if err != nil {
		return nil, enrichmentError(err, "airline %q", carrier)
	}

	top, err := r.airports.FindCityTopAirport(ctx, end.City)
	if err != nil {
		return nil, enrichmentError(err, "top airport of %q", end.City)
	}

	return &domain.ResolvedRoute{
		StartAirport: *start,
		EndAirport:   *end,
		Company:      airline.Name,
		TopAirport:   *top,
	}, nil
}

func enrichmentError(err error, format string, args ...any) error {
	if domain.IsNotFound(err) {
		return fmt.Errorf("%w: unknown %s", domain.ErrEnrichmentFailed, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf("failed to resolve %s: %w", fmt.Sprintf(format, args...), err)
}
