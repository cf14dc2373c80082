package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors.
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyUserName = errors.New("user name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
)

// User represents a registered user of the adoption platform. The email is
// the natural key: creating a user with an email that already exists returns
// the stored record instead of inserting a duplicate.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a User with a generated ID and creation timestamp.
// Returns an error if validation fails.
func NewUser(name, email, photoURL string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		PhotoURL:  strings.TrimSpace(photoURL),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User carries the minimum required data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Name == "" {
		return ErrEmptyUserName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// validEmailFormat performs a minimal structural check: one "@" with a dotted
// domain after it. Validation stays at presence level; anything stricter is
// deliberately out of scope.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
