package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adoptly/adopt-api/internal/api/shared"
	"github.com/adoptly/adopt-api/internal/mocks"
	"github.com/adoptly/adopt-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	validClaims := &auth.Claims{
		Email: "user@example.com",
		Name:  "Test User",
	}

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedToken  string
		expectedEmail  string
	}{
		{
			name:           "valid bearer token",
			authHeader:     "Bearer valid-token",
			validateErr:    nil,
			claims:         validClaims,
			expectedStatus: http.StatusOK,
			expectedToken:  "valid-token",
			expectedEmail:  "user@example.com",
		},
		{
			name:           "scheme word is not checked",
			authHeader:     "Token valid-token",
			validateErr:    nil,
			claims:         validClaims,
			expectedStatus: http.StatusOK,
			expectedToken:  "valid-token",
			expectedEmail:  "user@example.com",
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without token part",
			authHeader:     "Bearer",
			validateErr:    auth.ErrInvalidToken,
			claims:         nil,
			expectedStatus: http.StatusForbidden,
			expectedToken:  "",
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			claims:         nil,
			expectedStatus: http.StatusForbidden,
			expectedToken:  "expired-token",
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			claims:         nil,
			expectedStatus: http.StatusForbidden,
			expectedToken:  "invalid-token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Create mock JWT service that records the extracted token
			var validatedToken string
			jwtService := &mocks.MockJWTService{
				ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
					validatedToken = tokenString
					if tt.validateErr != nil {
						return nil, tt.validateErr
					}
					return tt.claims, nil
				},
			}

			// Create middleware
			middleware := NewAuthMiddleware(jwtService)

			// Create test handler
			var capturedEmail string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := GetClaims(r)
				if ok {
					capturedEmail = claims.Email
				}
				w.WriteHeader(http.StatusOK)
			})

			// Create request
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			// Create response recorder
			recorder := httptest.NewRecorder()

			// Run middleware
			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			// Check status code
			assert.Equal(t, tt.expectedStatus, recorder.Code)

			// Check which token was handed to the JWT service
			if tt.authHeader != "" {
				assert.Equal(t, tt.expectedToken, validatedToken)
			}

			// Check claims propagated through the context
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedEmail, capturedEmail)
			}
		})
	}
}

func TestAuthMiddleware_MissingHeaderSkipsValidation(t *testing.T) {
	t.Parallel()

	called := false
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			called = true
			return nil, auth.ErrInvalidToken
		},
	}

	middleware := NewAuthMiddleware(jwtService)
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	recorder := httptest.NewRecorder()
	middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called, "token validation must not run without a header")
}

func TestGetClaims(t *testing.T) {
	t.Parallel()

	testClaims := &auth.Claims{Email: "user@example.com", Name: "Test User"}

	t.Run("context with claims", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.ClaimsContextKey, testClaims)
		req = req.WithContext(ctx)

		claims, ok := GetClaims(req)

		assert.True(t, ok)
		assert.Equal(t, testClaims, claims)
	})

	t.Run("context without claims", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)

		claims, ok := GetClaims(req)

		assert.False(t, ok)
		assert.Nil(t, claims)
	})
}
