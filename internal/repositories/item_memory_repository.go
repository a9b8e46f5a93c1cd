package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"todo/internal/models"

	"github.com/google/uuid"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
type InMemoryItemRepository struct {
	items map[string]models.Item
	seq   map[string]uint64 // insertion order per item ID
	next  uint64
	mu    sync.RWMutex
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items: make(map[string]models.Item),
		seq:   make(map[string]uint64),
	}
}

// ListByOwner returns the owner's items in insertion order.
func (r *InMemoryItemRepository) ListByOwner(_ context.Context, ownerID string) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.Item, 0)
	for _, item := range r.items {
		if item.UserID == ownerID {
			itemList = append(itemList, item)
		}
	}
	sort.Slice(itemList, func(i, j int) bool {
		return r.seq[itemList[i].ID] < r.seq[itemList[j].ID]
	})
	return itemList, nil
}

// Create adds a new item.
func (r *InMemoryItemRepository) Create(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("item with ID %s: %w", item.ID, ErrDuplicate)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.next++
	r.seq[item.ID] = r.next
	r.items[item.ID] = *item
	return nil
}

// Update modifies an existing item owned by ownerID.
func (r *InMemoryItemRepository) Update(_ context.Context, ownerID, id, title, description string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != ownerID {
		return nil, fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
	}
	item.Title = title
	item.Description = description
	r.items[id] = item
	return &item, nil
}

// Delete removes an item owned by ownerID.
func (r *InMemoryItemRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != ownerID {
		return fmt.Errorf("item with ID %s: %w", id, ErrNotFound)
	}
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}
