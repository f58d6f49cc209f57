package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mypresence/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemberLists_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.member_lists.go: store is required", func() {
		NewMemberLists[testMember](nil, &mock.PresenceRelayMock{}, testLogger)
	})
	assert.PanicsWithValue(t, "service.member_lists.go: relay is required", func() {
		NewMemberLists[testMember](&mock.AggregatedStoreMock[testMember]{}, nil, testLogger)
	})
}

func TestMemberLists_Update(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	metrics := newTestMetrics(t)
	agg := NewJSONAggregatedStore[testMember](store, staticView("a"), metrics, testLogger)
	relay := NewPresenceRelay(store, RelayConfig{Enabled: true, BaseChannel: "presence-relay"}, metrics, testLogger)
	lists := NewMemberLists[testMember](agg, relay, testLogger)

	members := []testMember{{ID: "u1"}, {ID: "u2"}}
	require.NoError(t, lists.Update(ctx, "presence-room:members", members))

	// Stored for the local instance and announced exactly once with the complete list.
	got, ok := agg.Get(ctx, "presence-room:members")
	require.True(t, ok)
	assert.Equal(t, members, got)
	assert.Equal(t, members, lists.Members(ctx, "presence-room:members"))

	msgs := store.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "PresenceChannelUpdated", msgs[0].Channel)
	var event struct {
		Event struct {
			Channel string       `json:"channel"`
			Members []testMember `json:"members"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &event))
	assert.Equal(t, "presence-room:members", event.Event.Channel)
	assert.Equal(t, members, event.Event.Members)
}

func TestMemberLists_Update_NilMembersPublishesEmptyList(t *testing.T) {
	relay := &mock.PresenceRelayMock{}
	agg := &mock.AggregatedStoreMock[testMember]{}
	lists := NewMemberLists[testMember](agg, relay, testLogger)

	require.NoError(t, lists.Update(context.Background(), "presence-room:members", nil))

	require.Len(t, agg.SetCalls(), 1)
	assert.NotNil(t, agg.SetCalls()[0].Values)
	assert.Empty(t, agg.SetCalls()[0].Values)
	require.Len(t, relay.PublishMemberListCalls(), 1)
	assert.Equal(t, []testMember{}, relay.PublishMemberListCalls()[0].Members)
}

func TestMemberLists_Update_InvalidKey(t *testing.T) {
	relay := &mock.PresenceRelayMock{}
	agg := &mock.AggregatedStoreMock[testMember]{}
	lists := NewMemberLists[testMember](agg, relay, testLogger)

	err := lists.Update(context.Background(), "room", []testMember{{ID: "u1"}})
	assert.True(t, IsBadParameterError(err))
	assert.Empty(t, agg.SetCalls())
	assert.Empty(t, relay.PublishMemberListCalls())
}

func TestMemberLists_Update_Errors(t *testing.T) {
	t.Run("store error is returned and nothing is published", func(t *testing.T) {
		relay := &mock.PresenceRelayMock{}
		agg := &mock.AggregatedStoreMock[testMember]{
			SetFunc: func(ctx context.Context, key string, values []testMember) error {
				return NewInternalServerError("Redis write field error", errors.New("connection refused"))
			},
		}
		lists := NewMemberLists[testMember](agg, relay, testLogger)

		err := lists.Update(context.Background(), "presence-room:members", []testMember{{ID: "u1"}})
		assert.True(t, IsInternalServerError(err))
		assert.Empty(t, relay.PublishMemberListCalls())
	})

	t.Run("publish error does not fail the update", func(t *testing.T) {
		relay := &mock.PresenceRelayMock{
			PublishMemberListFunc: func(ctx context.Context, channel string, members any) error {
				return NewInternalServerError("Redis publish error", errors.New("connection refused"))
			},
		}
		agg := &mock.AggregatedStoreMock[testMember]{}
		lists := NewMemberLists[testMember](agg, relay, testLogger)

		require.NoError(t, lists.Update(context.Background(), "presence-room:members", []testMember{{ID: "u1"}}))
		assert.Len(t, agg.SetCalls(), 1)
	})
}
