package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// ListByOwner retrieves the owner's items in creation order.
func (r *GORMItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items for user %s: %w", ownerID, err)
	}
	return items, nil
}

// Create creates a new item in the database.
func (r *GORMItemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate item id: %w", err)
		}
		item.ID = id.String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update sets title and description on the item if ownerID owns it.
// The conditional update and the read-back run in one transaction.
func (r *GORMItemRepository) Update(ctx context.Context, ownerID, id, title, description string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Item{}).
			Where("id = ? AND user_id = ?", id, ownerID).
			Updates(map[string]interface{}{
				"title":       title,
				"description": description,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
		}
		if err := tx.First(&item, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to reload item %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item if ownerID owns it.
func (r *GORMItemRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Item{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
