package identity

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory user store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findBy(func(u User) bool { return u.Email == email })
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findBy(func(u User) bool { return u.Username == username })
}

func (r *memoryRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	return r.findBy(func(u User) bool { return u.Phone == phone })
}

func (r *memoryRepository) List(_ context.Context) ([]User, error) {
	return r.collect(func(User) bool { return true }), nil
}

func (r *memoryRepository) ListByRole(_ context.Context, role Role) ([]User, error) {
	return r.collect(func(u User) bool { return u.Role == role }), nil
}

func (r *memoryRepository) ListByIDs(_ context.Context, ids []string) ([]User, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return r.collect(func(u User) bool { return wanted[u.ID] }), nil
}

func (r *memoryRepository) Update(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memoryRepository) findBy(match func(User) bool) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if match(user) {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) collect(match func(User) bool) []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []User
	for _, user := range r.users {
		if match(user) {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users
}
