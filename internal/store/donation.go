package store

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
)

// DonationStore defines the interface for donation persistence.
type DonationStore interface {
	// Create saves a new donation.
	Create(ctx context.Context, donation *domain.Donation) error

	// List returns all donations.
	List(ctx context.Context) ([]domain.Donation, error)
}
