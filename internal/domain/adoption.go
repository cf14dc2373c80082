package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyAdoptionEmail = errors.New("adoption request email cannot be empty")
	ErrEmptyAdoptionPetID = errors.New("adoption request pet ID cannot be empty")
)

// Adoption is a request by a user (identified by email) to adopt a pet.
// PetID is stored as an opaque reference; no referential integrity with the
// pets table is enforced.
type Adoption struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	PetID     string    `json:"petId"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdoption creates an adoption request with a generated ID.
func NewAdoption(email, petID, phone, address string) (*Adoption, error) {
	adoption := &Adoption{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		PetID:     strings.TrimSpace(petID),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		CreatedAt: time.Now().UTC(),
	}

	if err := adoption.Validate(); err != nil {
		return nil, err
	}

	return adoption, nil
}

// Validate checks that the request carries the minimum required data.
func (a *Adoption) Validate() error {
	if a.Email == "" {
		return ErrEmptyAdoptionEmail
	}
	if a.PetID == "" {
		return ErrEmptyAdoptionPetID
	}
	return nil
}
