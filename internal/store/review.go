package store

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
)

// ReviewStore defines the interface for review persistence.
type ReviewStore interface {
	// Create saves a new review.
	Create(ctx context.Context, review *domain.Review) error

	// List returns all reviews.
	List(ctx context.Context) ([]domain.Review, error)
}
