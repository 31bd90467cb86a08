package qpx

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultUserAgent identifies this service to QPX.
const DefaultUserAgent = "qpx-trips (gzip)"

// Request is one outgoing POST to QPX.
type Request struct {
	URL    string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// FullURL returns the target URL with the query parameters applied.
func (r Request) FullURL() (string, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", fmt.Errorf("invalid QPX url %q: %w", r.URL, err)
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Response is the status and decoded body of a QPX exchange.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends a request and returns whatever came back.
// A non-2xx status is not an error at this level.
type Transport interface {
	Post(ctx context.Context, req Request) (*Response, error)
}

// HTTPTransport is a Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport whose requests time out after timeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient wraps an existing http.Client.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Post(ctx context.Context, req Request) (*Response, error) {
	target, err := req.FullURL()
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to build QPX request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Setting Accept-Encoding by hand disables net/http's transparent decompression.
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read QPX response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

var _ Transport = (*HTTPTransport)(nil)
