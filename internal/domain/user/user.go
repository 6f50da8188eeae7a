package user

import (
	"github.com/shareit-app/shareit/internal/domain"
)

// User is the aggregate root for a registered user.
type User struct {
	id    int64
	name  string
	email string
}

// NewUser creates a new User with validated fields.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("user email is required")
	}
	return &User{name: name, email: email}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// --- Getters ---

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// Update applies a partial patch: empty fields leave the current value.
func (u *User) Update(name, email string) {
	if name != "" {
		u.name = name
	}
	if email != "" {
		u.email = email
	}
}
