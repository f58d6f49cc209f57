package service

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "mypresence"

// Metrics groups the collectors updated by the heartbeat, the aggregated store and the relay.
type Metrics struct {
	HeartbeatCycles  *prometheus.CounterVec
	HeartbeatSkipped prometheus.Counter
	RegistryPruned   *prometheus.CounterVec
	RegistryMembers  prometheus.Gauge
	AggregateGarbage prometheus.Counter
	MalformedValues  *prometheus.CounterVec
	RelayPublished   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HeartbeatCycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "heartbeat_cycles_total",
				Help:      "Heartbeat cycles by result (ok, write_error, read_error).",
			},
			[]string{"result"},
		),
		HeartbeatSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "heartbeat_skipped_total",
				Help:      "Heartbeat cycles skipped because the previous one was still running.",
			},
		),
		RegistryPruned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "registry_pruned_total",
				Help:      "Liveness records deleted from the registry by reason (stale, superseded, duplicate_host).",
			},
			[]string{"reason"},
		),
		RegistryMembers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "registry_members",
				Help:      "Instances in the local registry view after the last heartbeat cycle.",
			},
		),
		AggregateGarbage: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "aggregate_garbage_deleted_total",
				Help:      "Aggregated key fields deleted because their instance left the registry.",
			},
		),
		MalformedValues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "malformed_values_total",
				Help:      "Stored values skipped because they could not be decoded, by source (registry, aggregate).",
			},
			[]string{"source"},
		),
		RelayPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "relay_published_total",
				Help:      "Relay emissions by kind (relay, member_list) and result (ok, error).",
			},
			[]string{"kind", "result"},
		),
	}
	reg.MustRegister(
		m.HeartbeatCycles,
		m.HeartbeatSkipped,
		m.RegistryPruned,
		m.RegistryMembers,
		m.AggregateGarbage,
		m.MalformedValues,
		m.RelayPublished,
	)
	return m
}
