package store

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
)

// AdoptionStore defines the interface for adoption request persistence.
type AdoptionStore interface {
	// Create saves a new adoption request.
	Create(ctx context.Context, adoption *domain.Adoption) error

	// List returns all adoption requests.
	List(ctx context.Context) ([]domain.Adoption, error)
}
