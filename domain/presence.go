package domain

// PresenceEvent is the envelope published when an instance replaces its member list for a channel:
// {"event": {"channel": ..., "members": ...}}.
type PresenceEvent struct {
	Event PresenceChange `json:"event"`
}

// PresenceChange carries the complete new member list of one channel (never a delta).
type PresenceChange struct {
	Channel string `json:"channel"`
	Members any    `json:"members"`
}

// RelayMessage is one message received from a pub/sub channel.
type RelayMessage struct {
	Channel string
	Payload []byte
}

// LifecycleState is the registration state of the local instance.
type LifecycleState string

const (
	StateStarting      LifecycleState = "starting"
	StateAlive         LifecycleState = "alive"
	StateDeregistering LifecycleState = "deregistering"
	StateGone          LifecycleState = "gone"
)
