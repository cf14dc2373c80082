package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReviewEmail = errors.New("review email cannot be empty")
	ErrEmptyRating      = errors.New("review rating cannot be empty")
)

// Review is user feedback about the platform.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReview creates a Review with a generated ID.
func NewReview(email string, rating int, comment string) (*Review, error) {
	review := &Review{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks that the Review carries the minimum required data.
func (r *Review) Validate() error {
	if r.Email == "" {
		return ErrEmptyReviewEmail
	}
	if r.Rating == 0 {
		return ErrEmptyRating
	}
	return nil
}
