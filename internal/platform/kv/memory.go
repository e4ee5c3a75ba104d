package kv

import (
	"context"
	"sync"

	apperrors "brightbuddy/internal/platform/errors"
)

// Memory is an in-process Store. Within restores the previous contents when fn fails.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Within(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	snapshot := make(map[string]string, len(m.values))
	for k, v := range m.values {
		snapshot[k] = v
	}
	m.mu.Unlock()
	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.values = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}
