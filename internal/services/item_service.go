package services

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/models"
	"todo/internal/repositories"
)

// ItemService handles business logic related to items. Every method takes the
// owner ID from the verified caller identity.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher EventPublisher
}

// NewItemService creates a new ItemService. publisher may be nil.
func NewItemService(repo repositories.ItemRepository, publisher EventPublisher) *ItemService {
	return &ItemService{
		repo:      repo,
		publisher: publisher,
	}
}

// List returns the owner's items in creation order.
func (s *ItemService) List(ctx context.Context, ownerID string) ([]models.Item, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return items, nil
}

// Create adds an item for ownerID.
func (s *ItemService) Create(ctx context.Context, ownerID, title, description string) (*models.Item, error) {
	item := &models.Item{
		UserID:      ownerID,
		Title:       title,
		Description: description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	publishEvent(s.publisher, EventItemCreated, ownerID, item.ID)
	return item, nil
}

// Update replaces the title and description of an item owned by ownerID.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID, title, description string) (*models.Item, error) {
	item, err := s.repo.Update(ctx, ownerID, itemID, title, description)
	if err != nil {
		return nil, translateItemError(err)
	}

	publishEvent(s.publisher, EventItemUpdated, ownerID, item.ID)
	return item, nil
}

// Delete removes an item owned by ownerID.
func (s *ItemService) Delete(ctx context.Context, ownerID, itemID string) error {
	if err := s.repo.Delete(ctx, ownerID, itemID); err != nil {
		return translateItemError(err)
	}

	publishEvent(s.publisher, EventItemDeleted, ownerID, itemID)
	return nil
}

func translateItemError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
