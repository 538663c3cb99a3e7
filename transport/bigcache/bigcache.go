// Package bigcache backs memocache with an in-process BigCache instance.
// BigCache has no per-entry TTL: entries expire on the global LifeWindow,
// so per-call TTLs from the adapter are accepted and ignored.
package bigcache

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/memocache/transport"
)

type BigCache struct {
	c *bc.BigCache
}

var _ transport.Transport = (*BigCache)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*BigCache, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &BigCache{c: c}, nil
}

func (t *BigCache) Fetch(_ context.Context, key string) ([]byte, bool, error) {
	b, err := t.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (t *BigCache) Store(_ context.Context, key string, value []byte, _ time.Duration) (bool, error) {
	err := t.c.Set(key, value)
	return err == nil, err
}

func (t *BigCache) Close(_ context.Context) error {
	return t.c.Close()
}
