package interfaces

import (
	"context"

	"mypresence/domain"
)

// HashStore is the shared key/value store used as the cluster bulletin board.
// Every mutation addresses a single field of a hash, so concurrent writers never touch each other's fields.
//
//go:generate moq -stub -out mock/hash_store.go -pkg mock . HashStore
type HashStore interface {
	// HSet writes value under field of the hash key.
	// Returns nil on success; internal_server_error when the storage write fails.
	HSet(ctx context.Context, key, field string, value []byte) error

	// HGet reads one field of the hash key.
	// Returns:
	// 1) (value, nil) when the field exists;
	// 2) (nil, entity_not_found) when the hash or the field is absent;
	// 3) (nil, internal_server_error) on storage error.
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HGetAll reads every field of the hash key. A missing hash yields an empty map.
	// Returns (nil, internal_server_error) on storage error.
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// HDel deletes the given fields of the hash key. Missing fields are ignored.
	// Returns nil on success; internal_server_error on storage error.
	HDel(ctx context.Context, key string, fields ...string) error

	// Publish sends payload to channel. Delivery is best-effort: no acknowledgement, no retry.
	Publish(ctx context.Context, channel string, payload []byte) error

	// Subscribe listens on channels until ctx is done or the returned close func is called.
	// The message channel is closed once the subscription ends.
	Subscribe(ctx context.Context, channels ...string) (<-chan domain.RelayMessage, func() error, error)
}
