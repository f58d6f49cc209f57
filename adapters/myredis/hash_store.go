package myredis

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mypresence/domain"
	"mypresence/helpers"
	"mypresence/service"

	"github.com/go-redis/redis/v8"
)

// subscriptionBuffer is the capacity of the channel handed out by Subscribe.
const subscriptionBuffer = 64

type hashStore struct {
	client redis.UniversalClient
}

// NewHashStore creates redis implementation of interfaces.HashStore (HSET/HGET/HGETALL/HDEL, PUBLISH/SUBSCRIBE).
func NewHashStore(client redis.UniversalClient) *hashStore {
	return &hashStore{
		client: helpers.NilPanic(client, "adapters.myredis.hash_store.go: client is required"),
	}
}

func (s *hashStore) HSet(ctx context.Context, key, field string, value []byte) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return service.NewInternalServerError("Redis write field error", fmt.Errorf("can't write field '%s' of '%s', err: %w", field, key, err))
	}
	return nil
}

func (s *hashStore) HGet(ctx context.Context, key, field string) ([]byte, error) {
	data, err := s.client.HGet(ctx, key, field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.NewEntityNotFoundError("Field not found", err)
		}
		return nil, service.NewInternalServerError("Redis read field error", fmt.Errorf("can't read field '%s' of '%s', err: %w", field, key, err))
	}
	return data, nil
}

func (s *hashStore) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read hash error", fmt.Errorf("can't read hash '%s', err: %w", key, err))
	}
	out := make(map[string][]byte, len(values))
	for field, value := range values {
		out[field] = []byte(value)
	}
	return out, nil
}

func (s *hashStore) HDel(ctx context.Context, key string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, key, fields...).Err(); err != nil {
		return service.NewInternalServerError("Redis delete field error", fmt.Errorf("can't delete %d field(s) of '%s', err: %w", len(fields), key, err))
	}
	return nil
}

func (s *hashStore) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := s.client.Publish(ctx, channel, payload).Err(); err != nil {
		return service.NewInternalServerError("Redis publish error", fmt.Errorf("can't publish to '%s', err: %w", channel, err))
	}
	return nil
}

// Subscribe waits for the subscription to be confirmed before returning, so that no message published
// after Subscribe returns is lost. The returned func releases the subscription even when the consumer
// stopped reading; messages still buffered stay readable and the channel is closed afterwards.
func (s *hashStore) Subscribe(ctx context.Context, channels ...string) (<-chan domain.RelayMessage, func() error, error) {
	pubsub := s.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, service.NewInternalServerError("Redis subscribe error", fmt.Errorf("can't subscribe to %v, err: %w", channels, err))
	}

	var (
		once     sync.Once
		closeErr error
		done     = make(chan struct{})
	)
	closeFn := func() error {
		once.Do(func() {
			close(done)
			closeErr = pubsub.Close()
		})
		return closeErr
	}

	out := make(chan domain.RelayMessage, subscriptionBuffer)
	go func() {
		defer close(out)
		defer closeFn()
		in := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- domain.RelayMessage{Channel: msg.Channel, Payload: []byte(msg.Payload)}:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()
	return out, closeFn, nil
}
