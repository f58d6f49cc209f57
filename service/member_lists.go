package service

import (
	"context"

	"mypresence/helpers"
	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// MemberLists stores per-instance member lists of presence channels and announces every change.
// Storage and notification stay separate operations of the aggregated store and the relay;
// Update is the place application code calls to get both.
type MemberLists[T any] struct {
	store  interfaces.AggregatedStore[T]
	relay  interfaces.PresenceRelay
	logger log.Logger
}

// NewMemberLists creates a MemberLists over store and relay.
func NewMemberLists[T any](store interfaces.AggregatedStore[T], relay interfaces.PresenceRelay, logger log.Logger) *MemberLists[T] {
	return &MemberLists[T]{
		store:  helpers.NilPanic(store, "service.member_lists.go: store is required"),
		relay:  helpers.NilPanic(relay, "service.member_lists.go: relay is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.member_lists.go: logger is required"), "component", "MemberLists"),
	}
}

// Update replaces the local member list of key (e.g. "presence-room:members") and publishes the complete new list once.
// A failed publish is logged and does not fail the update: the list is stored and the relay is best-effort.
func (m *MemberLists[T]) Update(ctx context.Context, key string, members []T) error {
	if !IsMemberListKey(key) {
		return NewBadParameterError("key is not a presence member list (presence-*:members)", nil)
	}
	if members == nil {
		members = []T{}
	}
	if err := m.store.Set(ctx, key, members); err != nil {
		return err
	}
	if err := m.relay.PublishMemberList(ctx, key, members); err != nil {
		level.Warn(m.logger).Log("msg", "Member list stored but not announced", "key", key, "err", err)
	}
	return nil
}

// Members returns the member list of key across all live instances.
func (m *MemberLists[T]) Members(ctx context.Context, key string) []T {
	return m.store.GetAll(ctx, key)
}
