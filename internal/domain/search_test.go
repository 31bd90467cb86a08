package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestSearchRequest_Slices(t *testing.T) {
	outbound := date(t, "2024-06-01")
	inbound := date(t, "2024-06-10")

	tests := []struct {
		name    string
		inbound *time.Time
		want    []Slice
	}{
		{
			name:    "one way yields a single slice",
			inbound: nil,
			want: []Slice{
				{Origin: "NYC", Destination: "LON", Date: "2024-06-01"},
			},
		},
		{
			name:    "round trip mirrors the return slice",
			inbound: &inbound,
			want: []Slice{
				{Origin: "NYC", Destination: "LON", Date: "2024-06-01"},
				{Origin: "LON", Destination: "NYC", Date: "2024-06-10"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SearchRequest{
				Origin:       "NYC",
				Destination:  "LON",
				OutboundDate: outbound,
				InboundDate:  tt.inbound,
			}
			assert.Equal(t, tt.want, req.Slices())
			assert.Equal(t, tt.inbound != nil, req.IsRoundTrip())
		})
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	validRequest := func() *SearchRequest {
		return &SearchRequest{
			Origin:       "NYC",
			Destination:  "LON",
			OutboundDate: date(t, "2024-06-01"),
			Adults:       1,
			MaxPrice:     DefaultMaxPrice,
			Solutions:    3,
		}
	}
	before := date(t, "2024-05-01")

	tests := []struct {
		name        string
		modify      func(*SearchRequest)
		wantErr     bool
		errContains string
	}{
		{name: "valid request passes", modify: func(r *SearchRequest) {}},
		{name: "lowercase origin fails", modify: func(r *SearchRequest) { r.Origin = "nyc" }, wantErr: true, errContains: "origin"},
		{name: "quoted origin fails", modify: func(r *SearchRequest) { r.Origin = `N"C` }, wantErr: true, errContains: "origin"},
		{name: "empty destination fails", modify: func(r *SearchRequest) { r.Destination = "" }, wantErr: true, errContains: "destination"},
		{name: "same origin and destination fails", modify: func(r *SearchRequest) { r.Destination = "NYC" }, wantErr: true, errContains: "must be different"},
		{name: "missing outbound date fails", modify: func(r *SearchRequest) { r.OutboundDate = time.Time{} }, wantErr: true, errContains: "outbound date"},
		{name: "inbound before outbound fails", modify: func(r *SearchRequest) { r.InboundDate = &before }, wantErr: true, errContains: "inbound date"},
		{name: "zero adults fails", modify: func(r *SearchRequest) { r.Adults = 0 }, wantErr: true, errContains: "adult"},
		{name: "negative max price fails", modify: func(r *SearchRequest) { r.MaxPrice = -1 }, wantErr: true, errContains: "max price"},
		{name: "zero solutions fails", modify: func(r *SearchRequest) { r.Solutions = 0 }, wantErr: true, errContains: "solutions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestSearchRequest_SetDefaults(t *testing.T) {
	req := SearchRequest{}
	req.SetDefaults()

	assert.Equal(t, DefaultMaxPrice, req.MaxPrice)
	assert.Equal(t, 1, req.Adults)

	req = SearchRequest{MaxPrice: 250, Adults: 3}
	req.SetDefaults()

	assert.Equal(t, 250, req.MaxPrice)
	assert.Equal(t, 3, req.Adults)
}
