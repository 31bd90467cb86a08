package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PriceCurrency is the literal prefix QPX puts in front of sale totals.
const PriceCurrency = "USD"

// legTimeLayouts are the timestamp formats QPX uses for leg departure and arrival.
var legTimeLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// RawTripOption is one priced itinerary as returned by QPX.
type RawTripOption struct {
	// SaleTotal is the currency-prefixed total price (e.g., "USD123.45")
	SaleTotal string

	// Slices are the directional parts of the itinerary, outbound first
	Slices []TripSlice
}

// TripSlice is one direction of a trip option.
type TripSlice struct {
	// Duration is the slice duration in minutes
	Duration int

	Segments []TripSegment
}

// TripSegment is one operated flight inside a slice.
type TripSegment struct {
	// Carrier is the IATA code of the operating airline
	Carrier string

	Legs []TripLeg
}

// TripLeg is one takeoff/landing pair.
type TripLeg struct {
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
}

// TripAttributes are the normalized values derived from a RawTripOption.
type TripAttributes struct {
	StartAirportCode string
	EndAirportCode   string
	Carrier          string
	Price            float64
	Departure        time.Time
	Arrival          time.Time
	StartTime        float64
	EndTime          float64
	Stopover         int
	Duration         int
}

// FirstSegment returns the first segment of the first slice.
func (o *RawTripOption) FirstSegment() (TripSegment, bool) {
	if len(o.Slices) == 0 || len(o.Slices[0].Segments) == 0 {
		return TripSegment{}, false
	}
	return o.Slices[0].Segments[0], true
}

// LastSegment returns the last segment of the last slice.
func (o *RawTripOption) LastSegment() (TripSegment, bool) {
	if len(o.Slices) == 0 {
		return TripSegment{}, false
	}
	segments := o.Slices[len(o.Slices)-1].Segments
	if len(segments) == 0 {
		return TripSegment{}, false
	}
	return segments[len(segments)-1], true
}

// FirstSliceLastSegment returns the last segment of the first slice, which
// lands at the outbound destination even for round trips.
func (o *RawTripOption) FirstSliceLastSegment() (TripSegment, bool) {
	if len(o.Slices) == 0 {
		return TripSegment{}, false
	}
	segments := o.Slices[0].Segments
	if len(segments) == 0 {
		return TripSegment{}, false
	}
	return segments[len(segments)-1], true
}

// FirstLeg returns the first leg of the first segment of the first slice.
func (o *RawTripOption) FirstLeg() (TripLeg, bool) {
	segment, ok := o.FirstSegment()
	if !ok || len(segment.Legs) == 0 {
		return TripLeg{}, false
	}
	return segment.Legs[0], true
}

// LastLeg returns the last leg of the last segment of the last slice.
func (o *RawTripOption) LastLeg() (TripLeg, bool) {
	segment, ok := o.LastSegment()
	if !ok || len(segment.Legs) == 0 {
		return TripLeg{}, false
	}
	return segment.Legs[len(segment.Legs)-1], true
}

// FirstSliceLastLeg returns the last leg of the last segment of the first slice.
func (o *RawTripOption) FirstSliceLastLeg() (TripLeg, bool) {
	segment, ok := o.FirstSliceLastSegment()
	if !ok || len(segment.Legs) == 0 {
		return TripLeg{}, false
	}
	return segment.Legs[len(segment.Legs)-1], true
}

// Carrier returns the carrier code of the first segment.
func (o *RawTripOption) Carrier() string {
	segment, _ := o.FirstSegment()
	return segment.Carrier
}

// SegmentCounts returns the number of segments in each slice.
func (o *RawTripOption) SegmentCounts() []int {
	counts := make([]int, len(o.Slices))
	for i, s := range o.Slices {
		counts[i] = len(s.Segments)
	}
	return counts
}

// SliceDurations returns the duration of each slice in minutes.
func (o *RawTripOption) SliceDurations() []int {
	durations := make([]int, len(o.Slices))
	for i, s := range o.Slices {
		durations[i] = s.Duration
	}
	return durations
}

// StopoverCount is the total number of segments across all slices.
func (o *RawTripOption) StopoverCount() int {
	total := 0
	for _, n := range o.SegmentCounts() {
		total += n
	}
	return total
}

// TotalDuration is the sum of all slice durations in minutes.
func (o *RawTripOption) TotalDuration() int {
	total := 0
	for _, d := range o.SliceDurations() {
		total += d
	}
	return total
}

// Price returns the sale total without its currency prefix.
func (o *RawTripOption) Price() (float64, error) {
	raw := strings.TrimSpace(strings.Replace(o.SaleTotal, PriceCurrency, "", 1))
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: sale total %q", ErrMalformedOption, o.SaleTotal)
	}
	return price, nil
}

// Derive computes the normalized trip attributes of the option.
func (o *RawTripOption) Derive() (TripAttributes, error) {
	firstLeg, ok := o.FirstLeg()
	if !ok {
		return TripAttributes{}, fmt.Errorf("%w: no first leg", ErrMalformedOption)
	}
	lastLeg, _ := o.LastLeg()
	outboundLeg, _ := o.FirstSliceLastLeg()

	price, err := o.Price()
	if err != nil {
		return TripAttributes{}, err
	}

	departure, err := ParseLegTime(firstLeg.DepartureTime)
	if err != nil {
		return TripAttributes{}, err
	}
	arrival, err := ParseLegTime(lastLeg.ArrivalTime)
	if err != nil {
		return TripAttributes{}, err
	}

	return TripAttributes{
		StartAirportCode: firstLeg.Origin,
		EndAirportCode:   outboundLeg.Destination,
		Carrier:          o.Carrier(),
		Price:            price,
		Departure:        departure,
		Arrival:          arrival,
		StartTime:        ClockValue(departure),
		EndTime:          ClockValue(arrival),
		Stopover:         o.StopoverCount(),
		Duration:         o.TotalDuration(),
	}, nil
}

// ParseLegTime parses a QPX leg timestamp, keeping its own UTC offset.
func ParseLegTime(value string) (time.Time, error) {
	for _, layout := range legTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unable to parse leg time %q", ErrMalformedOption, value)
}

// ClockValue renders the wall clock of t as hour.minute, so 14:05 becomes 14.05.
// The result is not a fractional hour.
func ClockValue(t time.Time) float64 {
	v, _ := strconv.ParseFloat(t.Format("15.04"), 64)
	return v
}
