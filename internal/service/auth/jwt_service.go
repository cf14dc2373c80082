// Package auth implements the token service: issuance and verification of
// signed, expiring bearer tokens.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT for the given subject email.
	// The email is mandatory; name is carried as an informational claim.
	// Returns the token string and its expiry, or an error if signing fails.
	GenerateToken(ctx context.Context, email, name string) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken when validation
	// fails; both are terminal for the caller.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a verified token. The subject email is
// always present; anything else is informational.
type Claims struct {
	// Email is the subject the token was issued for.
	Email string `json:"sub"`

	// Name is the display name supplied at issuance, if any.
	Name string `json:"name,omitempty"`

	// Standard registered JWT claims.
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
