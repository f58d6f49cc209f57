package domain

// Keys and channels shared by every instance of the cluster.
const (
	// KeyPrefix prefixes every hash written to the shared store.
	KeyPrefix = "list:"
	// ServerListKey is the registry hash: field = instance name, value = LivenessRecord.
	ServerListKey = KeyPrefix + "server_list"
	// PresenceUpdatedChannel receives member list envelopes.
	PresenceUpdatedChannel = "PresenceChannelUpdated"
)

// Instance identifies one running process of the cluster.
// Name is unique among simultaneously live instances, Host is shared by restarts on the same machine.
type Instance struct {
	Name string
	Host string
}

// LivenessRecord is the heartbeat value an instance writes under its own registry field.
// Time is unix milliseconds; json names match records written by older producers ({time, name}).
type LivenessRecord struct {
	Name string `json:"name"`
	Host string `json:"host,omitempty"`
	Time int64  `json:"time"`
}

// AggregateKey returns the hash key holding per-instance contributions for application key key.
func AggregateKey(key string) string {
	return KeyPrefix + key
}
