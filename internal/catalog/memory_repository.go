package catalog

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]Entry
}

// NewMemoryRepository builds an in-memory reference store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{entries: map[Kind]map[string]Entry{
		KindBrand:    {},
		KindCategory: {},
		KindUnit:     {},
	}}
}

func (r *memoryRepository) Create(_ context.Context, kind Kind, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind][entry.ID] = entry
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, kind Kind, id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[kind][id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, kind Kind, slug string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries[kind] {
		if entry.Slug == slug {
			return entry, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (r *memoryRepository) List(_ context.Context, kind Kind) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.entries[kind]))
	for _, entry := range r.entries[kind] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

func (r *memoryRepository) Update(_ context.Context, kind Kind, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[kind][entry.ID]; !ok {
		return ErrNotFound
	}
	r.entries[kind][entry.ID] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, kind Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[kind][id]; !ok {
		return ErrNotFound
	}
	delete(r.entries[kind], id)
	return nil
}
