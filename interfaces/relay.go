package interfaces

import "context"

// PresenceRelay notifies external subscribers about aggregate changes over pub/sub.
// Emissions are at-most-once; a disabled relay accepts every call and publishes nothing.
//
//go:generate moq -stub -out mock/relay.go -pkg mock . PresenceRelay
type PresenceRelay interface {
	// Publish sends value (JSON encoded) to the namespaced channel. Empty channel means the base relay channel.
	Publish(ctx context.Context, channel string, value any) error

	// PublishMemberList sends the {"event":{"channel","members"}} envelope carrying the complete member list of channel.
	PublishMemberList(ctx context.Context, channel string, members any) error

	// Enabled reports whether emissions are published at all.
	Enabled() bool
}
