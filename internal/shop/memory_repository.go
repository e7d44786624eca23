package shop

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	shops map[string]Shop
}

// NewMemoryRepository builds an in-memory shop store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{shops: make(map[string]Shop)}
}

func (r *memoryRepository) Create(_ context.Context, shop Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[shop.ID] = shop
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shop, ok := r.shops[id]
	if !ok {
		return Shop{}, ErrNotFound
	}
	return shop, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, shop := range r.shops {
		if shop.Slug == slug {
			return shop, nil
		}
	}
	return Shop{}, ErrNotFound
}

func (r *memoryRepository) List(_ context.Context) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shops := make([]Shop, 0, len(r.shops))
	for _, shop := range r.shops {
		shops = append(shops, shop)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].CreatedAt.After(shops[j].CreatedAt) })
	return shops, nil
}
