package qpx

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// Normalize decodes a QPX trips/search body into raw trip options.
// An empty body, a JSON null, or a body without trips yields no options and no error.
func Normalize(body []byte) ([]domain.RawTripOption, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var resp tripsSearchResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if resp.Trips == nil || len(resp.Trips.TripOption) == 0 {
		return nil, nil
	}

	options := make([]domain.RawTripOption, 0, len(resp.Trips.TripOption))
	for _, o := range resp.Trips.TripOption {
		options = append(options, normalizeOption(o))
	}
	return options, nil
}

func normalizeOption(o tripOption) domain.RawTripOption {
	slices := make([]domain.TripSlice, 0, len(o.Slice))
	for _, s := range o.Slice {
		segments := make([]domain.TripSegment, 0, len(s.Segment))
		for _, seg := range s.Segment {
			legs := make([]domain.TripLeg, 0, len(seg.Leg))
			for _, l := range seg.Leg {
				legs = append(legs, domain.TripLeg{
					Origin:        l.Origin,
					Destination:   l.Destination,
					DepartureTime: l.DepartureTime,
					ArrivalTime:   l.ArrivalTime,
				})
			}
			segments = append(segments, domain.TripSegment{
				Carrier: seg.Flight.Carrier,
				Legs:    legs,
			})
		}
		slices = append(slices, domain.TripSlice{
			Duration: s.Duration,
			Segments: segments,
		})
	}

	return domain.RawTripOption{
		SaleTotal: o.SaleTotal,
		Slices:    slices,
	}
}
