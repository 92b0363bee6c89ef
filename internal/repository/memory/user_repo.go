package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is an in-memory repository.UserRepository for tests.
type UserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]domain.User)}
}

// Create inserts a new user, enforcing email uniqueness like the mongo index.
func (r *UserRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, errors.New("user with this email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := user
	return &u, nil
}
