package product

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewMemoryRepository builds an in-memory product store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{products: make(map[string]Product)}
}

func (r *memoryRepository) Create(_ context.Context, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return product, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (Product, error) {
	return r.findBy(func(p Product) bool { return p.Slug == slug })
}

func (r *memoryRepository) FindBySKU(_ context.Context, sku string) (Product, error) {
	return r.findBy(func(p Product) bool { return p.SKU == sku })
}

func (r *memoryRepository) FindByProductCode(_ context.Context, code string) (Product, error) {
	return r.findBy(func(p Product) bool { return p.ProductCode == code })
}

func (r *memoryRepository) FindByBarCode(_ context.Context, barCode string) (Product, error) {
	return r.findBy(func(p Product) bool { return p.BarCode != "" && p.BarCode == barCode })
}

func (r *memoryRepository) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	return products, nil
}

func (r *memoryRepository) Update(_ context.Context, product Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memoryRepository) findBy(match func(Product) bool) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, product := range r.products {
		if match(product) {
			return product, nil
		}
	}
	return Product{}, ErrNotFound
}
