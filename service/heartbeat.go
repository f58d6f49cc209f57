package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"mypresence/domain"
	"mypresence/helpers"
	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrHeartbeatStarted is returned by Start when the heartbeat loop already runs.
	ErrHeartbeatStarted = errors.New("heartbeat already started")
	// ErrHeartbeatClosed is returned by Start after Close.
	ErrHeartbeatClosed = errors.New("heartbeat is closed")
)

// Prune reasons, used as the metric label and in log lines.
const (
	pruneStale         = "stale"
	pruneSuperseded    = "superseded"
	pruneDuplicateHost = "duplicate_host"
)

// maxCycleTimeout bounds the store round-trips of one heartbeat cycle.
const maxCycleTimeout = 10 * time.Second

// HeartbeatConfig holds the liveness timing. A record older than CheckInterval+CheckGuard is stale.
type HeartbeatConfig struct {
	CheckInterval time.Duration
	CheckGuard    time.Duration
}

// Heartbeat publishes the local liveness record and owns the registry view rebuilt from every cycle.
// It implements interfaces.RegistryView.
type Heartbeat struct {
	store   interfaces.HashStore
	self    domain.Instance
	cfg     HeartbeatConfig
	clock   clockwork.Clock
	metrics *Metrics
	logger  log.Logger

	// cycleMu is held for the duration of a cycle; a Tick that cannot take it is skipped.
	cycleMu sync.Mutex

	mu      sync.RWMutex
	members []string
	state   domain.LifecycleState
	synced  bool
	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHeartbeat creates the heartbeat of the local instance. Nothing is written until Start or Tick.
// Before the first successful cycle the registry view contains only the local instance and Synced is false.
func NewHeartbeat(
	store interfaces.HashStore,
	self domain.Instance,
	cfg HeartbeatConfig,
	clock clockwork.Clock,
	metrics *Metrics,
	logger log.Logger,
) *Heartbeat {
	helpers.StrPanic(self.Name, "service.heartbeat.go: instance name is required")
	if cfg.CheckInterval <= 0 {
		panic("service.heartbeat.go: check interval must be positive")
	}
	return &Heartbeat{
		store:   helpers.NilPanic(store, "service.heartbeat.go: store is required"),
		self:    self,
		cfg:     cfg,
		clock:   helpers.NilPanic(clock, "service.heartbeat.go: clock is required"),
		metrics: helpers.NilPanic(metrics, "service.heartbeat.go: metrics is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "service.heartbeat.go: logger is required"), "component", "Heartbeat"),
		members: []string{self.Name},
		state:   domain.StateStarting,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start runs one cycle immediately and then one every CheckInterval until ctx is done or Close is called.
// A failing first cycle does not fail Start: the registry is fail-open and the next tick retries.
func (h *Heartbeat) Start(ctx context.Context) error {
	h.mu.Lock()
	if h.state == domain.StateDeregistering || h.state == domain.StateGone {
		h.mu.Unlock()
		return ErrHeartbeatClosed
	}
	if h.started {
		h.mu.Unlock()
		return ErrHeartbeatStarted
	}
	h.started = true
	h.state = domain.StateAlive
	ticker := h.clock.NewTicker(h.cfg.CheckInterval)
	h.mu.Unlock()

	level.Info(h.logger).Log(
		"msg", "Starting heartbeat",
		"instance", h.self.Name,
		"host", h.self.Host,
		"check_interval", h.cfg.CheckInterval,
		"check_guard", h.cfg.CheckGuard,
	)
	h.Tick(ctx)
	go h.loop(ctx, ticker)
	return nil
}

func (h *Heartbeat) loop(ctx context.Context, ticker clockwork.Ticker) {
	defer close(h.doneCh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.stopCh:
			return
		case <-ticker.Chan():
			h.Tick(ctx)
		}
	}
}

// Tick runs one heartbeat cycle: write the own record, read the whole registry, delete stale and
// superseded records and rebuild the view. Returns false when the cycle was skipped or failed;
// the previous view is kept in that case.
func (h *Heartbeat) Tick(ctx context.Context) bool {
	if !h.cycleMu.TryLock() {
		h.metrics.HeartbeatSkipped.Inc()
		level.Warn(h.logger).Log("msg", "Previous heartbeat cycle still running, skipping")
		return false
	}
	defer h.cycleMu.Unlock()

	if state := h.State(); state == domain.StateDeregistering || state == domain.StateGone {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, h.cycleTimeout())
	defer cancel()

	now := h.clock.Now()
	record, err := json.Marshal(domain.LivenessRecord{Name: h.self.Name, Host: h.self.Host, Time: now.UnixMilli()})
	if err != nil {
		level.Error(h.logger).Log("msg", "Failed to encode liveness record", "err", err)
		return false
	}
	if err := h.store.HSet(ctx, domain.ServerListKey, h.self.Name, record); err != nil {
		h.metrics.HeartbeatCycles.WithLabelValues("write_error").Inc()
		level.Error(h.logger).Log("msg", "Failed to write liveness record, keeping previous registry view", "err", err)
		return false
	}

	fields, err := h.store.HGetAll(ctx, domain.ServerListKey)
	if err != nil {
		h.metrics.HeartbeatCycles.WithLabelValues("read_error").Inc()
		level.Error(h.logger).Log("msg", "Failed to read registry, keeping previous registry view", "err", err)
		return false
	}

	members, pruned := h.evaluate(fields, now)
	if len(pruned) > 0 {
		if err := h.store.HDel(ctx, domain.ServerListKey, pruned...); err != nil {
			level.Warn(h.logger).Log("msg", "Failed to delete pruned liveness records", "fields", strings.Join(pruned, ","), "err", err)
		}
	}

	h.mu.Lock()
	h.members = members
	h.synced = true
	h.mu.Unlock()

	h.metrics.RegistryMembers.Set(float64(len(members)))
	h.metrics.HeartbeatCycles.WithLabelValues("ok").Inc()
	level.Debug(h.logger).Log("msg", "Ping check server", "members", strings.Join(members, ","))
	return true
}

type observedRecord struct {
	field  string
	record domain.LivenessRecord
}

// evaluate splits a registry snapshot into the live member names and the fields to delete.
// Records of the local instance always survive. Records without a host skip the host rules.
func (h *Heartbeat) evaluate(fields map[string][]byte, now time.Time) ([]string, []string) {
	threshold := now.Add(-(h.cfg.CheckInterval + h.cfg.CheckGuard)).UnixMilli()

	observed := make([]observedRecord, 0, len(fields))
	for field, raw := range fields {
		records, err := UnmarshalFlatJSON[domain.LivenessRecord](raw)
		if err != nil {
			h.metrics.MalformedValues.WithLabelValues("registry").Inc()
			level.Warn(h.logger).Log("msg", "Skipping malformed liveness record", "field", field, "err", err)
			continue
		}
		for _, r := range records {
			observed = append(observed, observedRecord{field: field, record: r})
		}
	}

	// Foreign hosts announced by more than one instance name in the same snapshot.
	foreignNames := make(map[string]map[string]struct{})
	for _, o := range observed {
		r := o.record
		if r.Name == h.self.Name || r.Host == "" || r.Host == h.self.Host {
			continue
		}
		if foreignNames[r.Host] == nil {
			foreignNames[r.Host] = make(map[string]struct{})
		}
		foreignNames[r.Host][r.Name] = struct{}{}
	}

	alive := map[string]struct{}{h.self.Name: {}}
	// A field holding several records is deleted only when none of them survives.
	survivors := make(map[string]int)
	firstPruned := make(map[string]observedRecord)
	reasons := make(map[string]string)
	for _, o := range observed {
		r := o.record
		if r.Name == h.self.Name || o.field == h.self.Name {
			continue
		}

		var reason string
		switch {
		case r.Host != "" && r.Host == h.self.Host:
			reason = pruneSuperseded
		case r.Host != "" && len(foreignNames[r.Host]) > 1:
			reason = pruneDuplicateHost
		case r.Time < threshold:
			reason = pruneStale
		}
		if reason == "" {
			alive[r.Name] = struct{}{}
			survivors[o.field]++
			continue
		}
		if _, done := firstPruned[o.field]; !done {
			firstPruned[o.field] = o
			reasons[o.field] = reason
		}
	}

	prunedFields := make(map[string]struct{})
	for field, o := range firstPruned {
		if survivors[field] > 0 {
			continue
		}
		prunedFields[field] = struct{}{}
		r := o.record
		h.metrics.RegistryPruned.WithLabelValues(reasons[field]).Inc()
		level.Info(h.logger).Log(
			"msg", "Remove server from list",
			"reason", reasons[field],
			"name", r.Name,
			"host", r.Host,
			"age", fmt.Sprintf("%dms", now.UnixMilli()-r.Time),
		)
	}

	return sortedKeys(alive), sortedKeys(prunedFields)
}

// Close stops the loop and deletes the own registry field (best effort, bounded by ctx).
// Calling it again is a no-op.
func (h *Heartbeat) Close(ctx context.Context) error {
	h.mu.Lock()
	if h.state == domain.StateDeregistering || h.state == domain.StateGone {
		h.mu.Unlock()
		return nil
	}
	h.state = domain.StateDeregistering
	started := h.started
	if started {
		close(h.stopCh)
	}
	h.mu.Unlock()

	if started {
		<-h.doneCh
	}

	// Wait for a manual Tick that might still be writing the record.
	h.cycleMu.Lock()
	err := h.store.HDel(ctx, domain.ServerListKey, h.self.Name)
	h.cycleMu.Unlock()

	h.mu.Lock()
	h.state = domain.StateGone
	h.mu.Unlock()

	if err != nil {
		level.Warn(h.logger).Log("msg", "Failed to deregister instance, peers will prune it once stale", "instance", h.self.Name, "err", err)
		return fmt.Errorf("deregister instance %q: %w", h.self.Name, err)
	}
	level.Info(h.logger).Log("msg", "Instance deregistered", "instance", h.self.Name)
	return nil
}

// Self returns the identity of the local instance.
func (h *Heartbeat) Self() domain.Instance {
	return h.self
}

// Members returns a copy of the current registry view.
func (h *Heartbeat) Members() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.members))
	copy(out, h.members)
	return out
}

// Contains reports whether name is in the current registry view.
func (h *Heartbeat) Contains(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	i := sort.SearchStrings(h.members, name)
	return i < len(h.members) && h.members[i] == name
}

// Synced reports whether a heartbeat cycle has completed successfully since the heartbeat was created.
func (h *Heartbeat) Synced() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.synced
}

// State returns the lifecycle state of the local instance.
func (h *Heartbeat) State() domain.LifecycleState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Heartbeat) cycleTimeout() time.Duration {
	if h.cfg.CheckInterval < maxCycleTimeout {
		return h.cfg.CheckInterval
	}
	return maxCycleTimeout
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
