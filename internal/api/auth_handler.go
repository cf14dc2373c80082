package api

import (
	"net/http"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/service/auth"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
	}
}

// IssueToken handles POST /jwt. The endpoint is public: clients exchange
// their identity (email, display name) for a signed bearer token used on
// the protected routes.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), req.Email, req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
