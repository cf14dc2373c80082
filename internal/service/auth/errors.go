package auth

import "errors"

// Common authentication service errors. The auth gate treats every
// validation failure identically, but the distinct sentinels keep logs and
// tests precise about what actually went wrong.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingSubject indicates a token was requested without a subject
	// email. Issuing subject-less tokens is deliberately not supported.
	ErrMissingSubject = errors.New("token subject email is required")
)
