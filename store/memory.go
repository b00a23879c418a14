package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"grubdash-api/models"
)

type entry[T models.Record] struct {
	record T
	seq    uint64
}

// Memory is an in-process Store safe for concurrent use.
type Memory[T models.Record] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	seq   uint64
}

func NewMemory[T models.Record]() *Memory[T] {
	return &Memory[T]{items: make(map[string]entry[T])}
}

func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]entry[T], 0, len(m.items))
	for _, e := range m.items {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.record)
	}
	return out, nil
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return e.record, nil
}

func (m *Memory[T]) Create(_ context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := record.Key()
	if _, exists := m.items[id]; exists {
		return fmt.Errorf("create %q: %w", id, ErrConflict)
	}
	m.seq++
	m.items[id] = entry[T]{record: record, seq: m.seq}
	return nil
}

// Update replaces the stored record, keeping its position in List.
func (m *Memory[T]) Update(_ context.Context, record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := record.Key()
	e, ok := m.items[id]
	if !ok {
		return fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	e.record = record
	m.items[id] = e
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	delete(m.items, id)
	return nil
}

var (
	_ Store[models.Dish]  = (*Memory[models.Dish])(nil)
	_ Store[models.Order] = (*Memory[models.Order])(nil)
)
