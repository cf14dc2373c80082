package api

import (
	"time"

	"github.com/google/uuid"
)

// Request payloads. Validation stays at presence level (plus basic email
// format), matching the scope of the backing handlers.

// TokenRequest defines the payload for the token issuance endpoint. The
// email becomes the token subject and is mandatory; issuing subject-less
// tokens is not supported.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// CreateUserRequest defines the payload for user creation.
type CreateUserRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	PhotoURL string `json:"photo_url"`
}

// CreatePetRequest defines the payload for pet listing creation.
type CreatePetRequest struct {
	PetName     string `json:"pet_name"    validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Age         int    `json:"age"         validate:"required,gt=0"`
	Breed       string `json:"breed"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateAdoptionRequest defines the payload for adoption requests. PetID is
// an opaque reference; its format is deliberately not validated here.
type CreateAdoptionRequest struct {
	Email   string `json:"email" validate:"required,email"`
	PetID   string `json:"petId" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateReviewRequest defines the payload for reviews.
type CreateReviewRequest struct {
	Email   string `json:"email"  validate:"required,email"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// CreateDonationRequest defines the payload for donations.
type CreateDonationRequest struct {
	Email   string  `json:"email"  validate:"required,email"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Message string  `json:"message"`
}

// Response envelopes. Every success body carries "success": true; the error
// envelope lives in shared.ErrorResponse.

// TokenResponse is the success body for token issuance.
type TokenResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreatedResponse is the success body for insert operations, carrying the
// store-generated identifier.
type CreatedResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	InsertedID uuid.UUID `json:"inserted_id"`
}

// DataResponse is the success body for single-entity reads, and for user
// creation where the full (new or pre-existing) record is returned.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ListResponse is the success body for collection reads.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// DeleteResponse is the success body for delete operations that report how
// many rows were removed rather than failing on absence.
type DeleteResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
}

// MessageResponse is the success body for operations with nothing to return
// beyond an acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
