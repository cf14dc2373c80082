package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdoption(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		adoption, err := NewAdoption("Adopter@Example.com", "pet-42", "555-0101", "1 Main St")
		require.NoError(t, err)
		assert.Equal(t, "adopter@example.com", adoption.Email)
		assert.Equal(t, "pet-42", adoption.PetID)
	})

	t.Run("missing email", func(t *testing.T) {
		t.Parallel()

		_, err := NewAdoption("", "pet-42", "", "")
		assert.ErrorIs(t, err, ErrEmptyAdoptionEmail)
	})

	t.Run("missing pet id", func(t *testing.T) {
		t.Parallel()

		_, err := NewAdoption("adopter@example.com", "  ", "", "")
		assert.ErrorIs(t, err, ErrEmptyAdoptionPetID)
	})
}

func TestNewReview(t *testing.T) {
	t.Parallel()

	t.Run("valid review", func(t *testing.T) {
		t.Parallel()

		review, err := NewReview("reviewer@example.com", 5, "great")
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("missing rating", func(t *testing.T) {
		t.Parallel()

		_, err := NewReview("reviewer@example.com", 0, "")
		assert.ErrorIs(t, err, ErrEmptyRating)
	})

	t.Run("missing email", func(t *testing.T) {
		t.Parallel()

		_, err := NewReview("", 5, "")
		assert.ErrorIs(t, err, ErrEmptyReviewEmail)
	})
}

func TestNewDonation(t *testing.T) {
	t.Parallel()

	t.Run("valid donation", func(t *testing.T) {
		t.Parallel()

		donation, err := NewDonation("donor@example.com", 25.5, "keep going")
		require.NoError(t, err)
		assert.Equal(t, 25.5, donation.Amount)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		t.Parallel()

		_, err := NewDonation("donor@example.com", 0, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("missing email", func(t *testing.T) {
		t.Parallel()

		_, err := NewDonation("", 10, "")
		assert.ErrorIs(t, err, ErrEmptyDonationEmail)
	})
}
