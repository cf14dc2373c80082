package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDonationEmail = errors.New("donation email cannot be empty")
	ErrInvalidAmount      = errors.New("donation amount must be greater than zero")
)

// Donation is a monetary contribution from a user.
type Donation struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDonation creates a Donation with a generated ID.
func NewDonation(email string, amount float64, message string) (*Donation, error) {
	donation := &Donation{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Amount:    amount,
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}

	if err := donation.Validate(); err != nil {
		return nil, err
	}

	return donation, nil
}

// Validate checks that the Donation carries the minimum required data.
func (d *Donation) Validate() error {
	if d.Email == "" {
		return ErrEmptyDonationEmail
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
