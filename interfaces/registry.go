package interfaces

import "mypresence/domain"

// RegistryView is the local, periodically rebuilt set of instances considered alive.
//
// Implemented by service.Heartbeat. Consulted by service.aggregatedStore when filtering contributions.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . RegistryView
type RegistryView interface {
	// Self returns the identity of the local instance.
	Self() domain.Instance

	// Members returns the sorted names of live instances as of the last heartbeat cycle.
	// The local instance is always included.
	Members() []string

	// Contains reports whether name is in the current view.
	Contains(name string) bool

	// Synced reports whether at least one heartbeat cycle has completed. Until then the view holds only
	// the local instance and absence from it says nothing about a peer.
	Synced() bool
}
