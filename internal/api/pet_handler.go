package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// PetHandler handles pet listing API requests. Listing and single-pet reads
// are public; creation and deletion sit behind the auth gate.
type PetHandler struct {
	petStore store.PetStore
}

// NewPetHandler creates a new PetHandler with the given dependencies.
func NewPetHandler(petStore store.PetStore) *PetHandler {
	return &PetHandler{
		petStore: petStore,
	}
}

// Create handles POST /pets.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Name, category and age are required for a pet")
		return
	}

	pet, err := domain.NewPet(req.PetName, req.Category, req.Age,
		req.Breed, req.Location, req.Description, req.ImageURL)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Name, category and age are required for a pet")
		return
	}

	if err := h.petStore.Create(r.Context(), pet); err != nil {
		HandleAPIError(w, r, err, "Failed to add pet")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{
		Success:    true,
		Message:    "Pet added successfully",
		InsertedID: pet.ID,
	})
}

// List handles GET /pets with an optional ?category= equality filter.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	pets, err := h.petStore.List(r.Context(), category)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get pets")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(pets),
		Data:    pets,
	})
}

// GetByID handles GET /pets/{id}. A malformed identifier is rejected before
// the store is touched; after that the status comes from the store error
// type, so an absent pet is 404.
func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid pet ID format")
		return
	}

	pet, err := h.petStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{
		Success: true,
		Data:    pet,
	})
}

// Delete handles DELETE /pets/{id}. Unlike user deletion, deleting an
// absent pet is a 404.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid pet ID format")
		return
	}

	if err := h.petStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Pet deleted successfully",
	})
}
