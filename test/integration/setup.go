// Package integration provides helpers and integration tests for the QPX trips service.
// Integration tests run the HTTP handlers, the use case, the QPX client and the
// reference data loader together against in-memory stores and a fake transport.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/gabrieltaylor/qpx/internal/adapter/http"
	"github.com/gabrieltaylor/qpx/internal/adapter/http/middleware"
	"github.com/gabrieltaylor/qpx/internal/adapter/qpx"
	"github.com/gabrieltaylor/qpx/internal/adapter/refdata"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
	"github.com/gabrieltaylor/qpx/internal/usecase"
	"github.com/gabrieltaylor/qpx/test/mock"
	"github.com/gabrieltaylor/qpx/test/testutil"
)

// Fixed values shared by the integration tests.
const (
	TestTripsURL   = "https://qpx.test/qpxExpress/v1/trips/search"
	TestAPIKey     = "test-key"
	TestSearchDate = "2026-10-16T12:00:00Z"
	OutboundDate   = "2026-11-20"
	InboundDate    = "2026-11-27"
)

// Env is a fully wired trip search pipeline backed by in-memory stores.
type Env struct {
	Transport *mock.Transport
	Airports  *mock.AirportStore
	Airlines  *mock.AirlineStore
	Trips     *mock.TripStore
	Clock     *timeutil.MockClock
	UseCase   usecase.TripSearchUseCase
}

// NewEnv wires the pipeline around transport and loads the testdata reference files.
func NewEnv(t *testing.T, transport qpx.Transport) *Env {
	t.Helper()
	return NewEnvWithTrips(t, transport, mock.NewTripStore())
}

// NewEnvWithTrips is NewEnv with a caller-supplied trip store.
func NewEnvWithTrips(t *testing.T, transport qpx.Transport, trips *mock.TripStore) *Env {
	t.Helper()

	env := &Env{
		Airports: mock.NewAirportStore(),
		Airlines: mock.NewAirlineStore(),
		Trips:    trips,
		Clock:    timeutil.NewMockClockFromString(TestSearchDate),
	}
	if mt, ok := transport.(*mock.Transport); ok {
		env.Transport = mt
	}

	env.loadReferenceData(t, nil)

	client := qpx.NewClient(transport, qpx.Config{TripsURL: TestTripsURL, APIKey: TestAPIKey}, logger.Nop())
	env.UseCase = usecase.NewTripSearchUseCase(usecase.Dependencies{
		Provider: client,
		Airports: env.Airports,
		Airlines: env.Airlines,
		Trips:    env.Trips,
		Clock:    env.Clock,
		Logger:   logger.Nop(),
	}, nil)

	return env
}

// FlagFirstClass reloads the reference data with codes as the configured first-class airports.
func (env *Env) FlagFirstClass(t *testing.T, codes ...string) {
	t.Helper()
	env.loadReferenceData(t, codes)
}

func (env *Env) loadReferenceData(t *testing.T, firstClass []string) {
	t.Helper()
	loader := refdata.NewLoader(env.Airports, env.Airlines, refdata.Config{
		AirportsFile:       testutil.TestDataPath(t, testutil.AirportsFile),
		AirlinesFile:       testutil.TestDataPath(t, testutil.AirlinesFile),
		FirstClassAirports: firstClass,
	}, logger.Nop())
	require.NoError(t, loader.LoadAll(context.Background()))
}

// NewFixtureEnv wires the pipeline to a transport answering with the QPX fixture.
func NewFixtureEnv(t *testing.T) *Env {
	t.Helper()
	return NewEnv(t, mock.NewTransport(testutil.LoadTestData(t, testutil.QPXTripsResponseFile)))
}

// DefaultSearchParams returns a valid round-trip search for the use case.
func DefaultSearchParams(t *testing.T) usecase.SearchParams {
	t.Helper()
	return usecase.SearchParams{
		Origin:       "NYC",
		Destination:  "LON",
		OutboundDate: testutil.MustParseDate(t, OutboundDate),
		InboundDate:  testutil.Ptr(testutil.MustParseDate(t, InboundDate)),
		Adults:       1,
	}
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.TripSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop())
	handler := httpAdapter.NewTripHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Post sends body as JSON to path.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Get requests path.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "body: %s", string(r.Body))
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin       string `json:"origin,omitempty"`
	Destination  string `json:"destination,omitempty"`
	City         string `json:"city,omitempty"`
	OutboundDate string `json:"outboundDate,omitempty"`
	InboundDate  string `json:"inboundDate,omitempty"`
	Adults       int    `json:"adults,omitempty"`
	MaxPrice     int    `json:"maxPrice,omitempty"`
}

// DefaultSearchRequest returns a valid round-trip search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:       "NYC",
		Destination:  "LON",
		OutboundDate: OutboundDate,
		InboundDate:  InboundDate,
		Adults:       1,
	}
}
