package mocks

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
	"github.com/google/uuid"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// CreateIfAbsentFn allows test cases to mock the CreateIfAbsent behavior
	CreateIfAbsentFn func(ctx context.Context, user *domain.User) (*domain.User, bool, error)

	// ListFn allows test cases to mock the List behavior
	ListFn func(ctx context.Context) ([]domain.User, error)

	// GetByEmailFn allows test cases to mock the GetByEmail behavior
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// DeleteFn allows test cases to mock the Delete behavior
	DeleteFn func(ctx context.Context, id uuid.UUID) (int64, error)

	// Default values used when functions aren't explicitly defined
	User         *domain.User
	Users        []domain.User
	Created      bool
	DeletedCount int64
	Err          error
}

// CreateIfAbsent implements the store.UserStore interface
func (m *MockUserStore) CreateIfAbsent(
	ctx context.Context,
	user *domain.User,
) (*domain.User, bool, error) {
	if m.CreateIfAbsentFn != nil {
		return m.CreateIfAbsentFn(ctx, user)
	}
	if m.Err != nil {
		return nil, false, m.Err
	}
	if m.User != nil {
		return m.User, m.Created, nil
	}
	return user, true, nil
}

// List implements the store.UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// Delete implements the store.UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DeletedCount, m.Err
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)
