package interfaces

import "context"

// AggregatedStore is the multi-writer view over application keys: every instance owns one slice of values
// per key and readers see the union of the slices of all live instances.
//
//go:generate moq -stub -out mock/aggregated_store.go -pkg mock . AggregatedStore
type AggregatedStore[T any] interface {
	// Get returns the local instance's own values under key.
	// Returns (nil, false) when there is no contribution or the store could not be read.
	// A false result means "unknown right now", not "definitely nothing".
	Get(ctx context.Context, key string) ([]T, bool)

	// GetAll returns the flattened values of every live instance under key.
	// Contributions of instances missing from the registry view are deleted as a side effect.
	// Store errors and malformed values are logged; the result then holds whatever could be read.
	GetAll(ctx context.Context, key string) []T

	// Set replaces the local instance's values under key. Other instances' values are never touched.
	// Returns nil on success; internal_server_error when marshalling or the storage write fails.
	Set(ctx context.Context, key string, values []T) error

	// Delete removes the local instance's values under key.
	// Returns nil on success; internal_server_error on storage error.
	Delete(ctx context.Context, key string) error
}
