package repository

import (
	"context"

	"alcyxob/runplan-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ActivePlanRepository owns the single persisted progress record. The record
// is stored under one well-known key; Get returns ErrNotFound both when the
// key is absent and when the stored payload cannot be decoded (stale schema
// from an older app version degrades to "no active plan" instead of crashing).
// Put must persist durably before returning: a toggle is only considered
// applied once the write has succeeded.
type ActivePlanRepository interface {
	Get(ctx context.Context) (*domain.ActivePlan, error)
	Put(ctx context.Context, plan *domain.ActivePlan) error
	Clear(ctx context.Context) error // idempotent
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
