package qpx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gabrieltaylor/qpx/internal/infrastructure/cache"
)

// CachedTransport reuses successful QPX responses for identical requests.
type CachedTransport struct {
	next  Transport
	cache *cache.Cache[*Response]
	ttl   time.Duration
}

// NewCachedTransport decorates next with a response cache. A zero ttl disables caching.
func NewCachedTransport(next Transport, store *cache.Cache[*Response], ttl time.Duration) *CachedTransport {
	return &CachedTransport{next: next, cache: store, ttl: ttl}
}

// NewResponseCache creates a cache that copies response bodies in and out.
func NewResponseCache(opts ...cache.Option[*Response]) *cache.Cache[*Response] {
	opts = append([]cache.Option[*Response]{cache.WithClone(cloneResponse)}, opts...)
	return cache.New(opts...)
}

func (t *CachedTransport) Post(ctx context.Context, req Request) (*Response, error) {
	if t.ttl <= 0 {
		return t.next.Post(ctx, req)
	}

	key, err := cacheKey(req)
	if err != nil {
		return t.next.Post(ctx, req)
	}
	if resp, ok := t.cache.Get(key); ok {
		return resp, nil
	}

	resp, err := t.next.Post(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		t.cache.Set(key, resp, t.ttl)
	}
	return resp, nil
}

func cacheKey(req Request) (string, error) {
	target, err := req.FullURL()
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(target))
	h.Write([]byte{0})
	h.Write(req.Body)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func cloneResponse(r *Response) *Response {
	if r == nil {
		return nil
	}
	return &Response{
		StatusCode: r.StatusCode,
		Body:       append([]byte(nil), r.Body...),
	}
}

var _ Transport = (*CachedTransport)(nil)
