// Package redis wraps the go-redis client used by the spell cache.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	UseTLS       bool
	PingTimeout  time.Duration
	SkipPingTest bool
}

// NewClient creates a Redis client for a single instance.
// Redis connects lazily, so this never touches the network.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
		ReadTimeout: opts.ReadTimeout,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:       endpoints,
		Password:    opts.Password,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
		ReadTimeout: opts.ReadTimeout,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// Connect builds a single-node client for one endpoint and a cluster client
// for several, then pings it unless SkipPingTest is set.
func Connect(ctx context.Context, endpoints []string, opts *Options) (Client, error) {
	if opts == nil {
		opts = &Options{}
	}

	var (
		client Client
		err    error
	)
	switch len(endpoints) {
	case 0:
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	case 1:
		client, err = NewClient(endpoints[0], opts)
	default:
		client, err = NewClusterClient(endpoints, opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.SkipPingTest {
		return client, nil
	}

	timeout := opts.PingTimeout
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis: ping %v", endpoints)
	}

	return client, nil
}
