package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("Jane Doe", "jane@example.com", "https://img.example.com/jane.png")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("email is trimmed and lowercased", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("Jane", "  Jane@Example.COM  ", "")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	tests := []struct {
		name    string
		user    string
		email   string
		wantErr error
	}{
		{"empty name", "", "jane@example.com", ErrEmptyUserName},
		{"whitespace name", "   ", "jane@example.com", ErrEmptyUserName},
		{"empty email", "Jane", "", ErrEmptyEmail},
		{"email without at", "Jane", "janeexample.com", ErrInvalidEmail},
		{"email without domain dot", "Jane", "jane@example", ErrInvalidEmail},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.user, tt.email, "")
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
