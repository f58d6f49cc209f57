package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"mypresence/domain"
	"mypresence/helpers"
	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var memberListKeyPattern = regexp.MustCompile(`^presence-.*:members$`)

// IsMemberListKey reports whether key names the member list of a presence channel, e.g. "presence-room:members".
func IsMemberListKey(key string) bool {
	return memberListKeyPattern.MatchString(key)
}

// RelayConfig configures the presence relay.
type RelayConfig struct {
	// Enabled turns publishing on; a disabled relay accepts every call and sends nothing.
	Enabled bool
	// KeyPrefix namespaces every channel name.
	KeyPrefix string
	// BaseChannel is used by Publish when no channel is given.
	BaseChannel string
}

type presenceRelay struct {
	store   interfaces.HashStore
	cfg     RelayConfig
	metrics *Metrics
	logger  log.Logger
}

// NewPresenceRelay creates the pub/sub relay. Emissions are best-effort and never retried.
func NewPresenceRelay(store interfaces.HashStore, cfg RelayConfig, metrics *Metrics, logger log.Logger) *presenceRelay {
	if cfg.Enabled {
		helpers.StrPanic(cfg.BaseChannel, "service.relay.go: base channel is required")
	}
	return &presenceRelay{
		store:   helpers.NilPanic(store, "service.relay.go: store is required"),
		cfg:     cfg,
		metrics: helpers.NilPanic(metrics, "service.relay.go: metrics is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.relay.go: logger is required"), "component", "PresenceRelay"),
	}
}

func (r *presenceRelay) Enabled() bool {
	return r.cfg.Enabled
}

func (r *presenceRelay) Publish(ctx context.Context, channel string, value any) error {
	if !r.cfg.Enabled {
		return nil
	}
	if channel == "" {
		channel = r.cfg.BaseChannel
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return NewBadParameterError("Relay value is not serializable", fmt.Errorf("can't marshal %T, err: %w", value, err))
	}
	return r.publish(ctx, "relay", r.cfg.KeyPrefix+channel, payload)
}

func (r *presenceRelay) PublishMemberList(ctx context.Context, channel string, members any) error {
	if !r.cfg.Enabled {
		return nil
	}
	payload, err := json.Marshal(domain.PresenceEvent{
		Event: domain.PresenceChange{Channel: channel, Members: members},
	})
	if err != nil {
		return NewBadParameterError("Member list is not serializable", fmt.Errorf("can't marshal members of '%s', err: %w", channel, err))
	}
	return r.publish(ctx, "member_list", r.cfg.KeyPrefix+domain.PresenceUpdatedChannel, payload)
}

func (r *presenceRelay) publish(ctx context.Context, kind, channel string, payload []byte) error {
	if err := r.store.Publish(ctx, channel, payload); err != nil {
		r.metrics.RelayPublished.WithLabelValues(kind, "error").Inc()
		level.Warn(r.logger).Log("msg", "Relay publish failed", "channel", channel, "err", err)
		return NewInternalServerError("Redis publish error", fmt.Errorf("can't publish to '%s', err: %w", channel, err))
	}
	r.metrics.RelayPublished.WithLabelValues(kind, "ok").Inc()
	level.Debug(r.logger).Log("msg", "Relay published", "channel", channel, "payload", string(payload))
	return nil
}
