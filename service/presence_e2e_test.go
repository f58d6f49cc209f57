package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mypresence/adapters/myredis"
	"mypresence/domain"
	"mypresence/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type peer struct {
	heartbeat *service.Heartbeat
	members   *service.MemberLists[string]
}

func newPeer(t *testing.T, mr *miniredis.Miniredis, clock clockwork.Clock, self domain.Instance) peer {
	t.Helper()
	client, err := myredis.NewRedisUniversalClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := myredis.NewHashStore(client)
	metrics := service.NewMetrics(prometheus.NewRegistry())
	logger := log.NewNopLogger()

	hb := service.NewHeartbeat(store, self, service.HeartbeatConfig{CheckInterval: 60 * time.Second, CheckGuard: 20 * time.Second}, clock, metrics, logger)
	agg := service.NewJSONAggregatedStore[string](store, hb, metrics, logger)
	relay := service.NewPresenceRelay(store, service.RelayConfig{Enabled: true, KeyPrefix: "app:", BaseChannel: "presence-relay"}, metrics, logger)
	return peer{
		heartbeat: hb,
		members:   service.NewMemberLists[string](agg, relay, logger),
	}
}

func TestPresence_TwoInstancesOverRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC))

	a := newPeer(t, mr, clock, domain.Instance{Name: "ha:1", Host: "ha"})
	b := newPeer(t, mr, clock, domain.Instance{Name: "hb:1", Host: "hb"})
	require.True(t, a.heartbeat.Tick(ctx))
	require.True(t, b.heartbeat.Tick(ctx))
	require.True(t, a.heartbeat.Tick(ctx))
	assert.Equal(t, []string{"ha:1", "hb:1"}, a.heartbeat.Members())
	assert.Equal(t, []string{"ha:1", "hb:1"}, b.heartbeat.Members())

	// Observe the relay like an external consumer would.
	subClient, err := myredis.NewRedisUniversalClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer subClient.Close()
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	messages, closeSub, err := myredis.NewHashStore(subClient).Subscribe(subCtx, "app:PresenceChannelUpdated")
	require.NoError(t, err)
	defer closeSub()

	require.NoError(t, a.members.Update(ctx, "presence-room:members", []string{"u1"}))
	require.NoError(t, b.members.Update(ctx, "presence-room:members", []string{"u2", "u3"}))

	assert.Equal(t, []string{"u1", "u2", "u3"}, a.members.Members(ctx, "presence-room:members"))

	for _, want := range []string{"u1", "u2"} {
		select {
		case msg := <-messages:
			var event domain.PresenceEvent
			require.NoError(t, json.Unmarshal(msg.Payload, &event))
			assert.Equal(t, "presence-room:members", event.Event.Channel)
			members, ok := event.Event.Members.([]any)
			require.True(t, ok)
			assert.Equal(t, want, members[0])
		case <-time.After(2 * time.Second):
			t.Fatal("member list was not announced")
		}
	}

	// b crashes: it stops ticking and goes stale for a.
	clock.Advance(81 * time.Second)
	require.True(t, a.heartbeat.Tick(ctx))
	assert.Equal(t, []string{"ha:1"}, a.heartbeat.Members())
	assert.Equal(t, []string{"u1"}, a.members.Members(ctx, "presence-room:members"))
	fields, err := mr.HKeys("list:server_list")
	require.NoError(t, err)
	assert.Equal(t, []string{"ha:1"}, fields)
	fields, err = mr.HKeys("list:presence-room:members")
	require.NoError(t, err)
	assert.Equal(t, []string{"ha:1"}, fields)

	// a shuts down cleanly and leaves no record behind.
	require.NoError(t, a.heartbeat.Close(ctx))
	assert.False(t, mr.Exists("list:server_list"))
}
