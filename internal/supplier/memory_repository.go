package supplier

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	suppliers map[string]Supplier
}

// NewMemoryRepository builds an in-memory supplier store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{suppliers: make(map[string]Supplier)}
}

func (r *memoryRepository) Create(_ context.Context, supplier Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	supplier, ok := r.suppliers[id]
	if !ok {
		return Supplier{}, ErrNotFound
	}
	return supplier, nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (Supplier, error) {
	return r.findBy(func(s Supplier) bool { return s.Phone == phone })
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Supplier, error) {
	return r.findBy(func(s Supplier) bool { return s.Email != "" && s.Email == email })
}

func (r *memoryRepository) FindByRegistrationNumber(_ context.Context, registrationNumber string) (Supplier, error) {
	return r.findBy(func(s Supplier) bool {
		return s.RegistrationNumber != "" && s.RegistrationNumber == registrationNumber
	})
}

func (r *memoryRepository) List(_ context.Context) ([]Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	suppliers := make([]Supplier, 0, len(r.suppliers))
	for _, supplier := range r.suppliers {
		suppliers = append(suppliers, supplier)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt) })
	return suppliers, nil
}

func (r *memoryRepository) Update(_ context.Context, supplier Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.ID]; !ok {
		return ErrNotFound
	}
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}

func (r *memoryRepository) findBy(match func(Supplier) bool) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, supplier := range r.suppliers {
		if match(supplier) {
			return supplier, nil
		}
	}
	return Supplier{}, ErrNotFound
}
