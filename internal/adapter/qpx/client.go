// Package qpx talks to the QPX Express trips/search API.
package qpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
)

// ProviderName is the identifier of the QPX provider in logs.
const ProviderName = "qpx_express"

// Config holds the client settings.
type Config struct {
	TripsURL  string
	APIKey    string
	UserAgent string
}

// Client implements domain.TripSearchProvider on top of a Transport.
type Client struct {
	transport Transport
	config    Config
	logger    *logger.Logger
}

// NewClient creates a QPX client.
func NewClient(transport Transport, cfg Config, log *logger.Logger) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		transport: transport,
		config:    cfg,
		logger:    log.WithComponent("qpx"),
	}
}

func (c *Client) Name() string {
	return ProviderName
}

// SearchTrips posts the search and normalizes a 200 body.
// Any other status, or a transport failure, is returned as a domain.UpstreamError.
func (c *Client) SearchTrips(ctx context.Context, req domain.SearchRequest) ([]domain.RawTripOption, error) {
	httpReq, err := c.buildRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Post(ctx, httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.NewUpstreamError(ctx.Err())
		}
		return nil, domain.NewUpstreamError(err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Str("origin", req.Origin).
			Str("destination", req.Destination).
			Int("status", resp.StatusCode).
			Msg("QPX search rejected")
		return nil, domain.NewUpstreamStatusError(resp.StatusCode)
	}

	options, err := Normalize(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Int("options", len(options)).
		Msg("QPX search completed")

	return options, nil
}

func (c *Client) buildRequest(req domain.SearchRequest) (Request, error) {
	body, err := json.Marshal(NewTripsSearchRequest(req))
	if err != nil {
		return Request{}, fmt.Errorf("failed to encode QPX request: %w", err)
	}

	query := url.Values{}
	query.Set("key", c.config.APIKey)
	query.Set("fields", TripsFields)

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept-Encoding", "gzip")
	header.Set("User-Agent", c.config.UserAgent)

	return Request{
		URL:    c.config.TripsURL,
		Query:  query,
		Header: header,
		Body:   body,
	}, nil
}

var _ domain.TripSearchProvider = (*Client)(nil)
