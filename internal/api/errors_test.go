package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/service/auth"
	"github.com/adoptly/adopt-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusForbidden},
		{"expired token", auth.ErrExpiredToken, http.StatusForbidden},
		{"wrapped expired token", fmt.Errorf("checking: %w", auth.ErrExpiredToken), http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"pet not found", store.ErrPetNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired token", auth.ErrExpiredToken, "Forbidden access"},
		{"invalid token", auth.ErrInvalidToken, "Forbidden access"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"pet not found", store.ErrPetNotFound, "Pet not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"invalid id", domain.ErrInvalidID, "Invalid ID format"},
		{"validation", domain.ErrValidation, "Invalid request data"},
		{"nil", nil, "An unexpected error occurred"},
		{
			"internal details never leak",
			errors.New("pq: connection to postgres://user:pass@db failed"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
