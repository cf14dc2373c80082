package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/service/auth"
)

// AuthMiddleware is the auth gate: it verifies bearer tokens on protected
// routes before any handler or store access happens.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the token from the Authorization header and adds
// the decoded claims to the request context.
//
// A missing header is 401: no credential was presented at all. Everything
// else that fails (malformed header, bad signature, expiry) is 403: a
// credential was presented but is not trustworthy. The two rejections are
// the only terminal states; a verified token is the only way to a handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// The credential is the second whitespace-separated field. The
		// scheme prefix is accepted as-is: a wrong scheme just yields a
		// token that fails verification.
		var token string
		if fields := strings.Fields(authHeader); len(fields) >= 2 {
			token = fields[1]
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden access")
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts the verified token claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
