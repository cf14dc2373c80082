package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/adoptly/adopt-api/internal/domain"
)

// PetStore defines the interface for pet listing persistence.
type PetStore interface {
	// Create saves a new pet listing.
	Create(ctx context.Context, pet *domain.Pet) error

	// List returns all pets, optionally filtered by an equality match on
	// category. An empty category returns everything.
	List(ctx context.Context, category string) ([]domain.Pet, error)

	// GetByID retrieves a pet by its store identifier.
	// Returns ErrPetNotFound if the pet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)

	// Delete removes a pet by ID.
	// Returns ErrPetNotFound if no rows were removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
