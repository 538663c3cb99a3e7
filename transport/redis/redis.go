// Package redis backs memocache with a Redis (or Redis Cluster) deployment.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/memocache/transport"
)

var ErrNilClient = errors.New("redis transport: nil client")

type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ transport.Transport = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this transport exclusively owns the client
}

// New wraps an existing client, e.g. one shared with the rest of the app.
func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

// Factory returns a transport.Factory that dials its own universal client
// per server list. Recognized options (all optional):
//
//	username, password - credentials
//	db                 - logical database index
//	pool_size          - connection pool size per node
//
// Unknown options are ignored so configs can carry knobs for other
// transports without breaking this one.
func Factory() transport.Factory {
	return func(servers []string, options map[string]string) (transport.Transport, error) {
		uo := &goredis.UniversalOptions{
			Addrs:    servers,
			Username: options["username"],
			Password: options["password"],
		}
		if v, ok := options["db"]; ok {
			db, err := strconv.Atoi(v)
			if err != nil {
				return nil, errors.New("redis transport: invalid db option: " + v)
			}
			uo.DB = db
		}
		if v, ok := options["pool_size"]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, errors.New("redis transport: invalid pool_size option: " + v)
			}
			uo.PoolSize = n
		}
		return &Redis{rdb: goredis.NewUniversalClient(uo), closeClient: true}, nil
	}
}

func (t *Redis) Fetch(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := t.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (t *Redis) Store(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = 0 // non-positive TTL => no expiry
	}
	if err := t.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying client only when this transport owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (t *Redis) Close(context.Context) error {
	if t.closeClient {
		if err := t.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
