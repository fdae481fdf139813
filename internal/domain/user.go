package domain

import (
	"fmt"
	"time"
)

// User account validation errors.
var (
	ErrEmptyEmail    = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)
)

// User represents a registered account. A user owns exactly one Profile
// and zero or more Orcamentos.
//
// Email is stored as-is (case-sensitive) and is unique across all users.
// Only the bcrypt digest of the password is ever persisted.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only during registration/login
	HashedPassword string    `json:"-"` // Never expose the digest in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User for registration with the given credentials.
// The caller is responsible for hashing the password before storage.
func NewUser(email, password string) (*User, error) {
	user := &User{
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the credential fields. Only presence is enforced;
// there are no format or length rules beyond that.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}
