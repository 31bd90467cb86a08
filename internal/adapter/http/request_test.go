package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

func TestSearchTripsRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SearchTripsRequest
		wantFields []string
	}{
		{
			name: "valid round trip",
			req: SearchTripsRequest{
				Origin: "NYC", Destination: "LON",
				TravelDTO: TravelDTO{OutboundDate: "2026-11-20", InboundDate: "2026-11-27", Adults: 1},
			},
		},
		{
			name: "valid same-day return",
			req: SearchTripsRequest{
				Origin: "JFK", Destination: "BOS",
				TravelDTO: TravelDTO{OutboundDate: "2026-11-20", InboundDate: "2026-11-20"},
			},
		},
		{
			name:       "everything missing",
			req:        SearchTripsRequest{},
			wantFields: []string{"origin", "destination", "outboundDate"},
		},
		{
			name: "digits in code",
			req: SearchTripsRequest{
				Origin: "N1C", Destination: "LON",
				TravelDTO: TravelDTO{OutboundDate: "2026-11-20"},
			},
			wantFields: []string{"origin"},
		},
		{
			name: "bad inbound format",
			req: SearchTripsRequest{
				Origin: "NYC", Destination: "LON",
				TravelDTO: TravelDTO{OutboundDate: "2026-11-20", InboundDate: "next week"},
			},
			wantFields: []string{"inboundDate"},
		},
		{
			name: "negative adults",
			req: SearchTripsRequest{
				Origin: "NYC", Destination: "LON",
				TravelDTO: TravelDTO{OutboundDate: "2026-11-20", Adults: -2},
			},
			wantFields: []string{"adults"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			details := errs.ToMap()
			for _, field := range tt.wantFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestSearchTripsRequest_ValidateNormalizesAndParses(t *testing.T) {
	req := SearchTripsRequest{
		Origin:      " nyc",
		Destination: "lon",
		TravelDTO:   TravelDTO{OutboundDate: "2026-11-20", InboundDate: "2026-11-27"},
	}

	require.NoError(t, req.Validate())

	assert.Equal(t, "NYC", req.Origin)
	assert.Equal(t, "LON", req.Destination)
	assert.Equal(t, time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), req.outbound)
	require.NotNil(t, req.inbound)
	assert.Equal(t, time.Date(2026, 11, 27, 0, 0, 0, 0, time.UTC), *req.inbound)
	assert.Equal(t, 1, req.adults())
}

func TestMultiSearchRequest_Validate(t *testing.T) {
	req := MultiSearchRequest{Origin: "cdg", TravelDTO: TravelDTO{OutboundDate: "2026-11-20", Adults: 3}}
	require.NoError(t, req.Validate())
	assert.Equal(t, "CDG", req.Origin)
	assert.Equal(t, 3, req.adults())
	assert.Nil(t, req.inbound)

	bad := MultiSearchRequest{TravelDTO: TravelDTO{OutboundDate: "2026-13-01"}}
	var errs *ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "origin")
	assert.Contains(t, errs.ToMap(), "outboundDate")
}

func TestCitySearchRequest_Validate(t *testing.T) {
	req := CitySearchRequest{City: "  New York ", TravelDTO: TravelDTO{OutboundDate: "2026-11-20"}}
	require.NoError(t, req.Validate())
	assert.Equal(t, "New York", req.City)

	blank := CitySearchRequest{City: "   ", TravelDTO: TravelDTO{OutboundDate: "2026-11-20"}}
	var errs *ValidationErrors
	require.ErrorAs(t, blank.Validate(), &errs)
	assert.Equal(t, map[string]string{"city": "city is required"}, errs.ToMap())
}

func TestListTripsQuery_Validate(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		filter, err := (&ListTripsQuery{}).Validate()

		require.NoError(t, err)
		assert.Empty(t, filter.StartAirportCode)
		assert.Nil(t, filter.MaxPrice)
		assert.Nil(t, filter.MaxStopover)
		assert.Equal(t, domain.SortByPrice, filter.SortBy)
		assert.Zero(t, filter.Limit)
	})

	t.Run("all parameters", func(t *testing.T) {
		query := &ListTripsQuery{
			From: "jfk", To: "osl", MaxPrice: "450.5", MaxStopover: "0", SortBy: "Recent", Limit: "500",
		}

		filter, err := query.Validate()

		require.NoError(t, err)
		assert.Equal(t, "JFK", filter.StartAirportCode)
		assert.Equal(t, "OSL", filter.EndAirportCode)
		require.NotNil(t, filter.MaxPrice)
		assert.Equal(t, 450.5, *filter.MaxPrice)
		require.NotNil(t, filter.MaxStopover)
		assert.Equal(t, 0, *filter.MaxStopover)
		assert.Equal(t, domain.SortBySearchDate, filter.SortBy)
		assert.Equal(t, 500, filter.Limit)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		query := &ListTripsQuery{
			From: "JFKX", MaxPrice: "cheap", MaxStopover: "-1", SortBy: "best", Limit: "501",
		}

		_, err := query.Validate()

		var errs *ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		for _, field := range []string{"from", "maxPrice", "maxStopover", "sortBy", "limit"} {
			assert.Contains(t, details, field)
		}
	})
}

// TestValidationErrorsError tests the Error() method.
func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("field1", "error1")
	errs.Add("field2", "error2")

	errorMsg := errs.Error()
	require.NotEmpty(t, errorMsg)
	// Error() returns the first error's message
	assert.Equal(t, "error1", errorMsg)

	// Test empty errors
	emptyErrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", emptyErrs.Error())
	assert.NoError(t, emptyErrs.orNil())
}
