// Package ristretto backs memocache with an in-process Ristretto cache.
// Useful for single-process deployments and tests; there is no network, so
// read timeouts practically never fire.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/memocache/transport"
)

type Ristretto struct {
	c *rc.Cache
}

var _ transport.Transport = (*Ristretto)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Ristretto, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto transport: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{c: c}, nil
}

func (t *Ristretto) Fetch(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := t.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		t.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Store uses the payload size as admission cost. ok=false surfaces
// Ristretto's admission rejection as an unacknowledged write.
func (t *Ristretto) Store(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return t.c.SetWithTTL(key, value, int64(len(value)), ttl), nil
}

func (t *Ristretto) Close(_ context.Context) error {
	t.c.Wait()
	t.c.Close()
	return nil
}

// Metrics exposes the underlying cache metrics (not part of transport.Transport).
func (t *Ristretto) Metrics() *rc.Metrics { return t.c.Metrics }
