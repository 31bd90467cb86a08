package qpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
)

// recordingTransport returns a canned response and remembers every request.
type recordingTransport struct {
	response *Response
	err      error
	requests []Request
}

func (r *recordingTransport) Post(_ context.Context, req Request) (*Response, error) {
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	return r.response, nil
}

func testClient(transport Transport) *Client {
	return NewClient(transport, Config{
		TripsURL: "https://qpx.test/trips/search",
		APIKey:   "secret",
	}, logger.Nop())
}

func oneWayRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:       "NYC",
		Destination:  "LON",
		OutboundDate: time.Date(2016, 4, 30, 0, 0, 0, 0, time.UTC),
		Adults:       1,
		MaxPrice:     domain.DefaultMaxPrice,
		Solutions:    3,
	}
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "qpx_express", testClient(&recordingTransport{}).Name())
}

func TestClient_SearchTrips_RequestShape(t *testing.T) {
	transport := &recordingTransport{response: &Response{StatusCode: http.StatusOK, Body: []byte("{}")}}
	client := testClient(transport)

	options, err := client.SearchTrips(context.Background(), oneWayRequest())
	require.NoError(t, err)
	assert.Empty(t, options)
	require.Len(t, transport.requests, 1)

	req := transport.requests[0]
	assert.Equal(t, "https://qpx.test/trips/search", req.URL)
	assert.Equal(t, "secret", req.Query.Get("key"))
	assert.Equal(t, "trips/tripOption(saleTotal,slice(duration,segment))", req.Query.Get("fields"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "gzip", req.Header.Get("Accept-Encoding"))
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	request := body["request"].(map[string]any)

	slices := request["slice"].([]any)
	require.Len(t, slices, 1)
	assert.Equal(t, map[string]any{"origin": "NYC", "destination": "LON", "date": "2016-04-30"}, slices[0])

	passengers := request["passengers"].(map[string]any)
	assert.EqualValues(t, 1, passengers["adultCount"])
	for _, k := range []string{"infantInLapCount", "infantInSeatCount", "childCount", "seniorCount"} {
		assert.EqualValues(t, 0, passengers[k], k)
	}
	assert.Equal(t, "USD600", request["maxPrice"])
	assert.Equal(t, "USA", request["saleCountry"])
	assert.EqualValues(t, 3, request["solutions"])
	assert.Equal(t, false, request["refundable"])
}

func TestClient_SearchTrips_RoundTripSlices(t *testing.T) {
	transport := &recordingTransport{response: &Response{StatusCode: http.StatusOK}}
	client := testClient(transport)

	req := oneWayRequest()
	inbound := time.Date(2016, 5, 7, 0, 0, 0, 0, time.UTC)
	req.InboundDate = &inbound

	_, err := client.SearchTrips(context.Background(), req)
	require.NoError(t, err)

	var body TripsSearchRequest
	require.NoError(t, json.Unmarshal(transport.requests[0].Body, &body))
	assert.Equal(t, []SliceInput{
		{Origin: "NYC", Destination: "LON", Date: "2016-04-30"},
		{Origin: "LON", Destination: "NYC", Date: "2016-05-07"},
	}, body.Request.Slice)
}

func TestClient_SearchTrips_Normalizes(t *testing.T) {
	transport := &recordingTransport{response: &Response{StatusCode: http.StatusOK, Body: loadFixture(t)}}

	options, err := testClient(transport).SearchTrips(context.Background(), oneWayRequest())

	require.NoError(t, err)
	assert.Len(t, options, 2)
}

func TestClient_SearchTrips_NonOKStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusInternalServerError} {
		transport := &recordingTransport{response: &Response{StatusCode: status, Body: loadFixture(t)}}

		options, err := testClient(transport).SearchTrips(context.Background(), oneWayRequest())

		assert.Nil(t, options)
		require.Error(t, err)
		assert.True(t, domain.IsUpstreamFailed(err))

		var upstream *domain.UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, status, upstream.StatusCode)
	}
}

func TestClient_SearchTrips_TransportError(t *testing.T) {
	cause := errors.New("connection reset")
	transport := &recordingTransport{err: cause}

	_, err := testClient(transport).SearchTrips(context.Background(), oneWayRequest())

	assert.ErrorIs(t, err, domain.ErrUpstreamFailed)
	assert.ErrorIs(t, err, cause)
}

func TestClient_SearchTrips_ContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	transport := &recordingTransport{err: errors.New("request aborted")}

	_, err := testClient(transport).SearchTrips(ctx, oneWayRequest())

	assert.ErrorIs(t, err, domain.ErrUpstreamFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_SearchTrips_MalformedBody(t *testing.T) {
	transport := &recordingTransport{response: &Response{StatusCode: http.StatusOK, Body: []byte("{broken")}}

	_, err := testClient(transport).SearchTrips(context.Background(), oneWayRequest())

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}
