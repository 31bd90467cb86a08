// Package mock provides test doubles for the QPX trips service.
// These doubles are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gabrieltaylor/qpx/internal/adapter/qpx"
)

// Transport is a configurable qpx.Transport that answers without the network.
// It supports configurable delays, errors, and status codes for testing
// timeouts and upstream failures.
type Transport struct {
	body       []byte
	statusCode int
	err        error
	delay      time.Duration
	requests   []qpx.Request
	mu         sync.Mutex
}

// NewTransport creates a transport that answers every request with 200 and body.
func NewTransport(body []byte) *Transport {
	return &Transport{
		body:       body,
		statusCode: http.StatusOK,
	}
}

// WithStatus configures the status code of every response.
func (t *Transport) WithStatus(code int) *Transport {
	t.statusCode = code
	return t
}

// WithError configures the transport to fail every request with err.
func (t *Transport) WithError(err error) *Transport {
	t.err = err
	return t
}

// WithDelay configures the transport to wait the given duration before responding.
func (t *Transport) WithDelay(d time.Duration) *Transport {
	t.delay = d
	return t
}

// Post implements qpx.Transport.
func (t *Transport) Post(ctx context.Context, req qpx.Request) (*qpx.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	if t.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if t.err != nil {
		return nil, t.err
	}

	body := make([]byte, len(t.body))
	copy(body, t.body)
	return &qpx.Response{StatusCode: t.statusCode, Body: body}, nil
}

// CallCount returns the number of requests received.
func (t *Transport) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// Requests returns a copy of the requests received so far.
func (t *Transport) Requests() []qpx.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]qpx.Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// Reset forgets recorded requests.
func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = nil
}

// Ensure Transport implements qpx.Transport at compile time.
var _ qpx.Transport = (*Transport)(nil)
