package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mypresence/domain"
	"mypresence/helpers"
	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type aggregatedStore[T any] struct {
	store     interfaces.HashStore
	view      interfaces.RegistryView
	marshal   func([]T) ([]byte, error)
	unmarshal func([]byte) ([]T, error)
	metrics   *Metrics
	logger    log.Logger
}

// NewAggregatedStore creates the per-key aggregation facade. Each instance writes field <instance name>
// of hash list:<key>; reads are filtered against view.
func NewAggregatedStore[T any](
	store interfaces.HashStore,
	view interfaces.RegistryView,
	marshal func([]T) ([]byte, error),
	unmarshal func([]byte) ([]T, error),
	metrics *Metrics,
	logger log.Logger,
) *aggregatedStore[T] {
	return &aggregatedStore[T]{
		store:     helpers.NilPanic(store, "service.aggregated_store.go: store is required"),
		view:      helpers.NilPanic(view, "service.aggregated_store.go: view is required"),
		marshal:   helpers.NilPanic(marshal, "service.aggregated_store.go: marshal is required"),
		unmarshal: helpers.NilPanic(unmarshal, "service.aggregated_store.go: unmarshal is required"),
		metrics:   helpers.NilPanic(metrics, "service.aggregated_store.go: metrics is required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "service.aggregated_store.go: logger is required"), "component", "AggregatedStore"),
	}
}

// NewJSONAggregatedStore creates an aggregated store that encodes contributions as JSON arrays.
func NewJSONAggregatedStore[T any](store interfaces.HashStore, view interfaces.RegistryView, metrics *Metrics, logger log.Logger) *aggregatedStore[T] {
	return NewAggregatedStore[T](store, view, MarshalJSON[T], UnmarshalFlatJSON[T], metrics, logger)
}

func (s *aggregatedStore[T]) Get(ctx context.Context, key string) ([]T, bool) {
	self := s.view.Self().Name
	data, err := s.store.HGet(ctx, domain.AggregateKey(key), self)
	if err != nil {
		if !IsEntityNotFoundError(err) {
			level.Error(s.logger).Log("msg", "Failed to read own contribution", "key", key, "err", err)
		}
		return nil, false
	}

	values, err := s.unmarshal(data)
	if err != nil {
		s.metrics.MalformedValues.WithLabelValues("aggregate").Inc()
		level.Warn(s.logger).Log("msg", "Own contribution is malformed", "key", key, "err", err)
		return nil, false
	}
	return values, true
}

func (s *aggregatedStore[T]) GetAll(ctx context.Context, key string) []T {
	hashKey := domain.AggregateKey(key)
	fields, err := s.store.HGetAll(ctx, hashKey)
	if err != nil {
		level.Error(s.logger).Log("msg", "Failed to read aggregated key", "key", key, "err", err)
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]T, 0, len(names))
	var garbage []string
	for _, name := range names {
		if !s.view.Contains(name) {
			garbage = append(garbage, name)
			continue
		}
		values, err := s.unmarshal(fields[name])
		if err != nil {
			s.metrics.MalformedValues.WithLabelValues("aggregate").Inc()
			level.Warn(s.logger).Log("msg", "Skipping malformed contribution", "key", key, "instance", name, "err", err)
			continue
		}
		items = append(items, values...)
	}

	if len(garbage) > 0 && !s.view.Synced() {
		level.Debug(s.logger).Log("msg", "Registry view not synced yet, keeping unknown contributions", "key", key, "instances", strings.Join(garbage, ","))
		return items
	}
	if len(garbage) > 0 {
		if err := s.store.HDel(ctx, hashKey, garbage...); err != nil {
			level.Warn(s.logger).Log("msg", "Failed to delete contributions of gone instances", "key", key, "err", err)
		} else {
			s.metrics.AggregateGarbage.Add(float64(len(garbage)))
			level.Info(s.logger).Log("msg", "Deleted contributions of gone instances", "key", key, "instances", strings.Join(garbage, ","))
		}
	}
	return items
}

func (s *aggregatedStore[T]) Set(ctx context.Context, key string, values []T) error {
	data, err := s.marshal(values)
	if err != nil {
		return NewInternalServerError("Marshal contribution error", fmt.Errorf("can't marshal %T for key '%s', err: %w", values, key, err))
	}

	if err := s.store.HSet(ctx, domain.AggregateKey(key), s.view.Self().Name, data); err != nil {
		return NewInternalServerError("Redis write field error", fmt.Errorf("can't write contribution for key '%s', err: %w", key, err))
	}
	return nil
}

func (s *aggregatedStore[T]) Delete(ctx context.Context, key string) error {
	if err := s.store.HDel(ctx, domain.AggregateKey(key), s.view.Self().Name); err != nil {
		return NewInternalServerError("Redis delete field error", fmt.Errorf("can't delete contribution for key '%s', err: %w", key, err))
	}
	return nil
}
