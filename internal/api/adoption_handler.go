package api

import (
	"net/http"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// AdoptionHandler handles adoption request API requests.
type AdoptionHandler struct {
	adoptionStore store.AdoptionStore
}

// NewAdoptionHandler creates a new AdoptionHandler with the given dependencies.
func NewAdoptionHandler(adoptionStore store.AdoptionStore) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionStore: adoptionStore,
	}
}

// Create handles POST /adoptions.
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdoptionRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and pet ID are required for an adoption request")
		return
	}

	adoption, err := domain.NewAdoption(req.Email, req.PetID, req.Phone, req.Address)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and pet ID are required for an adoption request")
		return
	}

	if err := h.adoptionStore.Create(r.Context(), adoption); err != nil {
		HandleAPIError(w, r, err, "Failed to submit adoption request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{
		Success:    true,
		Message:    "Adoption request submitted successfully",
		InsertedID: adoption.ID,
	})
}

// List handles GET /adoptions.
func (h *AdoptionHandler) List(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.adoptionStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get adoption requests")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(adoptions),
		Data:    adoptions,
	})
}
