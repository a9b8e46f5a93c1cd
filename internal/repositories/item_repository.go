package repositories

import (
	"context"

	"todo/internal/models"
)

// ItemRepository defines the interface for item data access.
// Every lookup and mutation is scoped to an owner; an item owned by someone
// else is reported as ErrNotFound.
type ItemRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, ownerID, id, title, description string) (*models.Item, error)
	Delete(ctx context.Context, ownerID, id string) error
}
