package myredis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Addr string `validate:"required"`
}

// NewRedisUniversalClient creates and configures instance of redis universal client from a redis:// URL.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

// ConfigOption configures the client.
type ConfigOption func(*redis.Options)

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:              []string{options.Addr},
		DB:                 options.DB,
		Username:           options.Username,
		Password:           options.Password,
		WriteTimeout:       options.WriteTimeout,
		ReadTimeout:        options.ReadTimeout,
		DialTimeout:        options.DialTimeout,
		MaxRetries:         options.MaxRetries,
		PoolSize:           options.PoolSize,
		PoolTimeout:        options.PoolTimeout,
		MinIdleConns:       options.MinIdleConns,
		IdleTimeout:        options.IdleTimeout,
		IdleCheckFrequency: options.IdleCheckFrequency,
		TLSConfig:          options.TLSConfig,
	}
}

// PingTimeout bounds a single PING round-trip of WaitForRedis.
const PingTimeout = 2 * time.Second

// WaitForRedis pings the client with exponential backoff until it answers, maxElapsed passes or ctx is done.
// notify is called after every failed attempt with the error and the delay before the next one; it may be nil.
func WaitForRedis(ctx context.Context, client redis.UniversalClient, maxElapsed time.Duration, notify func(err error, next time.Duration)) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = maxElapsed
	b.Reset()

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("redis is not reachable: %w", err)
	}
	return nil
}
