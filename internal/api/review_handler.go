package api

import (
	"net/http"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// ReviewHandler handles review API requests.
type ReviewHandler struct {
	reviewStore store.ReviewStore
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(reviewStore store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{
		reviewStore: reviewStore,
	}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and rating are required for a review")
		return
	}

	review, err := domain.NewReview(req.Email, req.Rating, req.Comment)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"User email and rating are required for a review")
		return
	}

	if err := h.reviewStore.Create(r.Context(), review); err != nil {
		HandleAPIError(w, r, err, "Failed to add review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{
		Success:    true,
		Message:    "Review added successfully",
		InsertedID: review.ID,
	})
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get reviews")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(reviews),
		Data:    reviews,
	})
}
