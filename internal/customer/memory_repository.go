package customer

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

// NewMemoryRepository builds an in-memory customer store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{customers: make(map[string]Customer)}
}

func (r *memoryRepository) Create(_ context.Context, customer Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return customer, nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (Customer, error) {
	return r.findBy(func(c Customer) bool { return c.Phone == phone })
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Customer, error) {
	return r.findBy(func(c Customer) bool { return c.Email != "" && c.Email == email })
}

func (r *memoryRepository) FindByNationalID(_ context.Context, nationalID string) (Customer, error) {
	return r.findBy(func(c Customer) bool { return c.NationalID != "" && c.NationalID == nationalID })
}

func (r *memoryRepository) List(_ context.Context) ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customers := make([]Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].CreatedAt.After(customers[j].CreatedAt) })
	return customers, nil
}

func (r *memoryRepository) Update(_ context.Context, customer Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return ErrNotFound
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *memoryRepository) findBy(match func(Customer) bool) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, customer := range r.customers {
		if match(customer) {
			return customer, nil
		}
	}
	return Customer{}, ErrNotFound
}
