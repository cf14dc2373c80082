package mocks

import (
	"context"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// MockAdoptionStore implements store.AdoptionStore for testing
type MockAdoptionStore struct {
	CreateFn func(ctx context.Context, adoption *domain.Adoption) error
	ListFn   func(ctx context.Context) ([]domain.Adoption, error)

	Adoptions []domain.Adoption
	Err       error
}

// Create implements the store.AdoptionStore interface
func (m *MockAdoptionStore) Create(ctx context.Context, adoption *domain.Adoption) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, adoption)
	}
	return m.Err
}

// List implements the store.AdoptionStore interface
func (m *MockAdoptionStore) List(ctx context.Context) ([]domain.Adoption, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Adoptions, m.Err
}

// MockReviewStore implements store.ReviewStore for testing
type MockReviewStore struct {
	CreateFn func(ctx context.Context, review *domain.Review) error
	ListFn   func(ctx context.Context) ([]domain.Review, error)

	Reviews []domain.Review
	Err     error
}

// Create implements the store.ReviewStore interface
func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, review)
	}
	return m.Err
}

// List implements the store.ReviewStore interface
func (m *MockReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Reviews, m.Err
}

// MockDonationStore implements store.DonationStore for testing
type MockDonationStore struct {
	CreateFn func(ctx context.Context, donation *domain.Donation) error
	ListFn   func(ctx context.Context) ([]domain.Donation, error)

	Donations []domain.Donation
	Err       error
}

// Create implements the store.DonationStore interface
func (m *MockDonationStore) Create(ctx context.Context, donation *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, donation)
	}
	return m.Err
}

// List implements the store.DonationStore interface
func (m *MockDonationStore) List(ctx context.Context) ([]domain.Donation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Donations, m.Err
}

// Ensure the mocks implement the store interfaces
var (
	_ store.AdoptionStore = (*MockAdoptionStore)(nil)
	_ store.ReviewStore   = (*MockReviewStore)(nil)
	_ store.DonationStore = (*MockDonationStore)(nil)
)
