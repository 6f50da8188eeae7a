package user

import "context"

// Repository defines persistence operations for users.
type Repository interface {
	// Save persists a new user and returns it with its assigned id.
	// Email uniqueness violations surface as a ConflictError.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// FindByID retrieves a user by its identifier.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindAllByIDs retrieves the users with the given identifiers.
	FindAllByIDs(ctx context.Context, ids []int64) ([]*User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*User, error)

	// Delete removes a user by its identifier.
	Delete(ctx context.Context, id int64) error
}
