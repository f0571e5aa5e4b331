package sessionstore

import (
	"context"
	"sync"
)

// Memory is an ephemeral Store for tests and runs without local persistence.
type Memory struct {
	mu     sync.Mutex
	record []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil, nil
	}
	return append([]byte(nil), m.record...), nil
}

func (m *Memory) Save(ctx context.Context, record []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = append([]byte(nil), record...)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = nil
	return nil
}
