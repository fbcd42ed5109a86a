package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/school-portal/internal/domain"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	now   func() time.Time
}

// NewMemoryUserRepository returns a process-local store used when no database
// is configured.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User), now: time.Now}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return ErrUserExists
	}
	now := r.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) List(_ context.Context, filter UserFilter) ([]domain.User, error) {
	r.mu.RLock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		users = append(users, user)
	}
	r.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(users) {
			return []domain.User{}, nil
		}
		users = users[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(users) {
		users = users[:filter.Limit]
	}
	return users, nil
}

func (r *memoryUserRepository) UpdateStatus(_ context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.Status = status
	user.UpdatedAt = r.now().UTC()
	r.users[id] = user
	return &user, nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) CountByRole(_ context.Context) (map[domain.ResourceRole]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.ResourceRole]int)
	for _, user := range r.users {
		counts[user.Role]++
	}
	return counts, nil
}
