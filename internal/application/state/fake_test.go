package state

import (
	"context"
	"sync"

	"kanban/internal/domain/entity"
)

// memoryStorage records every save and can hold saves until released
type memoryStorage struct {
	mu      sync.Mutex
	stored  *entity.Board
	saves   []entity.Board
	clears  int
	fail    bool
	gate    chan struct{}
	started chan struct{}
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{}
}

// blocking makes each Save wait for a value on gate and announce itself on started
func (m *memoryStorage) blocking() *memoryStorage {
	m.gate = make(chan struct{})
	m.started = make(chan struct{}, 16)
	return m
}

func (m *memoryStorage) Load(ctx context.Context) *entity.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return nil
	}
	b := m.stored.Clone()
	return &b
}

func (m *memoryStorage) Save(ctx context.Context, board entity.Board) bool {
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.gate != nil {
		<-m.gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, board)
	if m.fail {
		return false
	}
	b := board.Clone()
	m.stored = &b
	return true
}

func (m *memoryStorage) Clear(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.stored = nil
	return !m.fail
}

func (m *memoryStorage) savedBoards() []entity.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Board, len(m.saves))
	copy(out, m.saves)
	return out
}
