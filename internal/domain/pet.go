package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pet validation errors.
var (
	ErrEmptyPetName     = errors.New("pet name cannot be empty")
	ErrEmptyPetCategory = errors.New("pet category cannot be empty")
	ErrInvalidPetAge    = errors.New("pet age must be greater than zero")
)

// Pet is a listing available for adoption. Category is a free-form grouping
// ("dog", "cat", ...) used for equality filtering on the public listing
// endpoint.
type Pet struct {
	ID          uuid.UUID `json:"id"`
	PetName     string    `json:"pet_name"`
	Category    string    `json:"category"`
	Age         int       `json:"age"`
	Breed       string    `json:"breed,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPet creates a Pet listing with a generated ID and creation timestamp.
func NewPet(petName, category string, age int, breed, location, description, imageURL string) (*Pet, error) {
	pet := &Pet{
		ID:          uuid.New(),
		PetName:     strings.TrimSpace(petName),
		Category:    strings.ToLower(strings.TrimSpace(category)),
		Age:         age,
		Breed:       strings.TrimSpace(breed),
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
		ImageURL:    strings.TrimSpace(imageURL),
		CreatedAt:   time.Now().UTC(),
	}

	if err := pet.Validate(); err != nil {
		return nil, err
	}

	return pet, nil
}

// Validate checks that the Pet carries the minimum required data.
func (p *Pet) Validate() error {
	if p.PetName == "" {
		return ErrEmptyPetName
	}
	if p.Category == "" {
		return ErrEmptyPetCategory
	}
	if p.Age <= 0 {
		return ErrInvalidPetAge
	}
	return nil
}
