package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/store"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
	}
}

// Create handles POST /users. User creation is idempotent by email: if a
// user with the given email already exists, the stored record is returned
// with success instead of an error, and nothing is inserted.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.PhotoURL)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and email are required")
		return
	}

	stored, created, err := h.userStore.CreateIfAbsent(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	message := "User added"
	if !created {
		message = "User already exists"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{
		Success: true,
		Message: message,
		Data:    stored,
	})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Success: true,
		Count:   len(users),
		Data:    users,
	})
}

// GetByEmail handles GET /users/{email}. The response status comes from the
// store error type: absent user is 404, everything else 500.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{
		Success: true,
		Data:    user,
	})
}

// Delete handles DELETE /users/{id}. Deleting an absent user is not an
// error; the response reports zero rows removed.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	deleted, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:      true,
		DeletedCount: deleted,
	})
}
