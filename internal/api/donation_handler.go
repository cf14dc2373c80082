package api

import (
	"net/http"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// DonationHandler handles donation API requests.
type DonationHandler struct {
	donationStore store.DonationStore
}

// NewDonationHandler creates a new DonationHandler with the given dependencies.
func NewDonationHandler(donationStore store.DonationStore) *DonationHandler {
	return &DonationHandler{
		donationStore: donationStore,
	}
}

// Create handles POST /donations.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and donation amount are required")
		return
	}

	donation, err := domain.NewDonation(req.Email, req.Amount, req.Message)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and donation amount are required")
		return
	}

	if err := h.donationStore.Create(r.Context(), donation); err != nil {
		HandleAPIError(w, r, err, "Failed to add donation")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{
		Success:    true,
		Message:    "Donation added successfully",
		InsertedID: donation.ID,
	})
}

// List handles GET /donations.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get donations")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(donations),
		Data:    donations,
	})
}
