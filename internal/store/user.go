package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/adoptly/adopt-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// CreateIfAbsent saves a new user unless one with the same email already
	// exists. The insert is atomic (unique index + conflict handling), so two
	// concurrent creates for the same email cannot both insert.
	//
	// Returns (user, true, nil) when the user was inserted, or
	// (existing, false, nil) when a user with that email was already stored.
	CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error)

	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete removes a user by ID and reports how many rows were removed.
	// Deleting an absent user is not an error; it returns zero.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
