package users

import (
	"context"

	"github.com/kolbask4/CollegeActivityApp/internal/models"
)

// Repository stores user accounts.
//
// FindByCredentials and FindByID return (nil, nil) when no matching user
// exists: absence is a normal outcome ("invalid credentials" / "no such
// user"), not an error.
type Repository interface {
	// Create inserts a new user. A duplicate IIN yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) error

	// FindByCredentials returns the user whose IIN matches and whose stored
	// password hash verifies the given password, or nil on any mismatch.
	FindByCredentials(ctx context.Context, iin, password string) (*models.User, error)

	// FindByID returns the user with the given IIN, or nil if absent.
	FindByID(ctx context.Context, iin string) (*models.User, error)

	// DeleteByID removes the user row; dependent grades, goals, and
	// portfolio items are cascade-deleted by the schema.
	DeleteByID(ctx context.Context, iin string) error
}
