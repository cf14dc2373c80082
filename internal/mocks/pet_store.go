package mocks

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
	"github.com/google/uuid"
)

// MockPetStore implements store.PetStore for testing
type MockPetStore struct {
	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, pet *domain.Pet) error

	// ListFn allows test cases to mock the List behavior
	ListFn func(ctx context.Context, category string) ([]domain.Pet, error)

	// GetByIDFn allows test cases to mock the GetByID behavior
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Pet, error)

	// DeleteFn allows test cases to mock the Delete behavior
	DeleteFn func(ctx context.Context, id uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Pet  *domain.Pet
	Pets []domain.Pet
	Err  error
}

// Create implements the store.PetStore interface
func (m *MockPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pet)
	}
	return m.Err
}

// List implements the store.PetStore interface
func (m *MockPetStore) List(ctx context.Context, category string) ([]domain.Pet, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, category)
	}
	return m.Pets, m.Err
}

// GetByID implements the store.PetStore interface
func (m *MockPetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Pet, m.Err
}

// Delete implements the store.PetStore interface
func (m *MockPetStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// Ensure MockPetStore implements store.PetStore
var _ store.PetStore = (*MockPetStore)(nil)
