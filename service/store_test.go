package service

import (
	"context"
	"sync"
	"testing"

	"mypresence/domain"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// memStore is an in-memory interfaces.HashStore shared by several instances in a test.
type memStore struct {
	mu        sync.Mutex
	hashes    map[string]map[string][]byte
	published []domain.RelayMessage
}

func newMemStore() *memStore {
	return &memStore{hashes: make(map[string]map[string][]byte)}
}

func (m *memStore) HSet(_ context.Context, key, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[key] == nil {
		m.hashes[key] = make(map[string][]byte)
	}
	m.hashes[key][field] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) HGet(_ context.Context, key, field string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.hashes[key][field]
	if !ok {
		return nil, NewEntityNotFoundError("Field not found", nil)
	}
	return v, nil
}

func (m *memStore) HGetAll(_ context.Context, key string) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.hashes[key]))
	for f, v := range m.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (m *memStore) HDel(_ context.Context, key string, fields ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}

func (m *memStore) Publish(_ context.Context, channel string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, domain.RelayMessage{Channel: channel, Payload: payload})
	return nil
}

func (m *memStore) Subscribe(context.Context, ...string) (<-chan domain.RelayMessage, func() error, error) {
	ch := make(chan domain.RelayMessage)
	close(ch)
	return ch, func() error { return nil }, nil
}

func (m *memStore) set(key, field, value string) {
	_ = m.HSet(context.Background(), key, field, []byte(value))
}

func (m *memStore) fields(key string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[string]struct{}, len(m.hashes[key]))
	for f := range m.hashes[key] {
		set[f] = struct{}{}
	}
	return sortedKeys(set)
}

func (m *memStore) messages() []domain.RelayMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.RelayMessage(nil), m.published...)
}

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(prometheus.NewRegistry())
}

var testLogger = log.NewNopLogger()
