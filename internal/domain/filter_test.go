package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOption_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		option SortOption
		want   bool
	}{
		{name: "price is valid", option: SortByPrice, want: true},
		{name: "duration is valid", option: SortByDuration, want: true},
		{name: "departure is valid", option: SortByDeparture, want: true},
		{name: "recent is valid", option: SortBySearchDate, want: true},
		{name: "invalid option", option: SortOption("best"), want: false},
		{name: "empty option", option: SortOption(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortByDuration, ParseSortOption("duration"))
	assert.Equal(t, SortBySearchDate, ParseSortOption("recent"))
	assert.Equal(t, SortByPrice, ParseSortOption(""))
	assert.Equal(t, SortByPrice, ParseSortOption("cheapest"))
}

func TestTripFilter_SetDefaults(t *testing.T) {
	f := TripFilter{}
	f.SetDefaults()

	assert.Equal(t, SortByPrice, f.SortBy)
	assert.Equal(t, DefaultTripLimit, f.Limit)
}

func TestTripFilter_Validate(t *testing.T) {
	negativePrice := -1.0
	negativeStops := -2

	tests := []struct {
		name      string
		filter    TripFilter
		wantField string
	}{
		{name: "empty filter is valid", filter: TripFilter{Limit: 10}},
		{name: "codes are valid", filter: TripFilter{StartAirportCode: "JFK", EndAirportCode: "LHR", Limit: 10}},
		{name: "bad start code", filter: TripFilter{StartAirportCode: "jfk"}, wantField: "from"},
		{name: "bad end code", filter: TripFilter{EndAirportCode: "LONDON"}, wantField: "to"},
		{name: "negative price", filter: TripFilter{MaxPrice: &negativePrice}, wantField: "maxPrice"},
		{name: "negative stopover", filter: TripFilter{MaxStopover: &negativeStops}, wantField: "maxStopover"},
		{name: "limit too high", filter: TripFilter{Limit: MaxTripLimit + 1}, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
