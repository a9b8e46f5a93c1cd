package repositories

import (
	"context"

	"todo/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts user, assigning an ID if empty. Returns ErrDuplicate
	// when the email is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
