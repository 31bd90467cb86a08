package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/gabrieltaylor/qpx/internal/adapter/http"
	"github.com/gabrieltaylor/qpx/test/mock"
	"github.com/gabrieltaylor/qpx/test/testutil"
)

// TestConcurrent_SameRouteStoresEachTripOnce fires identical searches at once
// and checks the store keeps one copy of every trip.
func TestConcurrent_SameRouteStoresEachTripOnce(t *testing.T) {
	transport := mock.NewTransport(testutil.LoadTestData(t, testutil.QPXTripsResponseFile)).
		WithDelay(10 * time.Millisecond)
	env := NewEnv(t, transport)
	ts := NewTestServer(env.UseCase)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.Post("/api/v1/trips/search", DefaultSearchRequest())
		}(i)
	}
	wg.Wait()

	inserted, duplicates := 0, 0
	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d should succeed", i)

		var summary httpAdapter.SearchSummaryDTO
		resp.Decode(t, &summary)
		assert.Equal(t, 2, summary.Options, "request %d", i)
		inserted += summary.Inserted
		duplicates += summary.Duplicates
	}

	assert.Equal(t, 2, inserted)
	assert.Equal(t, 2*numRequests-2, duplicates)
	assert.Len(t, env.Trips.All(), 2)
	assert.Equal(t, numRequests, transport.CallCount())
}

// TestConcurrent_RequestIDsAreIndependent checks each response carries its own request ID.
func TestConcurrent_RequestIDsAreIndependent(t *testing.T) {
	ts := NewTestServer(NewFixtureEnv(t).UseCase)

	numRequests := 8
	var wg sync.WaitGroup
	ids := make([]string, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = ts.Get("/api/v1/trips").Headers.Get("X-Request-ID")
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, numRequests)
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "request ID %s reused", id)
		seen[id] = true
	}
}

// TestConcurrent_CancelledSearchesStoreNothing cancels in-flight searches and
// checks no partial results are kept.
func TestConcurrent_CancelledSearchesStoreNothing(t *testing.T) {
	transport := mock.NewTransport(testutil.LoadTestData(t, testutil.QPXTripsResponseFile)).
		WithDelay(time.Second)
	env := NewEnv(t, transport)

	ctx, cancel := context.WithCancel(context.Background())
	numSearches := 5
	var wg sync.WaitGroup
	errs := make([]error, numSearches)

	for i := 0; i < numSearches; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = env.UseCase.SearchTrips(ctx, DefaultSearchParams(t))
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	cancel()
	wg.Wait()

	for i, err := range errs {
		assert.ErrorIs(t, err, context.Canceled, "search %d", i)
	}
	assert.Empty(t, env.Trips.All())
}
