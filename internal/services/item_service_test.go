package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"todo/internal/models"
	"todo/internal/repositories"
	"todo/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_List(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil)
	ctx := context.Background()

	expectedItems := []models.Item{
		{ID: "1", UserID: "user-123", Title: "Buy milk"},
		{ID: "2", UserID: "user-123", Title: "Walk dog"},
	}
	mockRepo.On("ListByOwner", ctx, "user-123").Return(expectedItems, nil).Once()

	items, err := service.List(ctx, "user-123")
	assert.NoError(t, err)
	assert.Equal(t, expectedItems, items)

	mockRepo.On("ListByOwner", ctx, "user-456").Return(nil, errors.New("database error")).Once()
	_, err = service.List(ctx, "user-456")
	assert.ErrorIs(t, err, services.ErrStore)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Create(t *testing.T) {
	mockRepo := new(MockItemRepository)
	publisher := new(MockPublisher)
	service := services.NewItemService(mockRepo, publisher)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(item *models.Item) bool {
		return item.UserID == "user-123" && item.Title == "Buy milk" && item.Description == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Item).ID = "item-1"
	}).Return(nil).Once()
	publisher.On("Publish", services.EventItemCreated, mock.Anything).Return(nil).Once()

	item, err := service.Create(ctx, "user-123", "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Buy milk", item.Title)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("database error")).Once()
	_, err = service.Create(ctx, "user-123", "Buy milk", "")
	assert.ErrorIs(t, err, services.ErrStore)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestItemService_Update(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil)
	ctx := context.Background()

	updated := &models.Item{ID: "item-1", UserID: "user-123", Title: "Buy oat milk"}
	mockRepo.On("Update", ctx, "user-123", "item-1", "Buy oat milk", "").Return(updated, nil).Once()
	item, err := service.Update(ctx, "user-123", "item-1", "Buy oat milk", "")
	assert.NoError(t, err)
	assert.Equal(t, updated, item)

	// Another user's item looks exactly like a missing one
	mockRepo.On("Update", ctx, "user-456", "item-1", "x", "").
		Return(nil, fmt.Errorf("item with ID item-1: %w", repositories.ErrNotFound)).Once()
	_, err = service.Update(ctx, "user-456", "item-1", "x", "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.On("Update", ctx, "user-123", "item-1", "y", "").Return(nil, errors.New("deadlock")).Once()
	_, err = service.Update(ctx, "user-123", "item-1", "y", "")
	assert.ErrorIs(t, err, services.ErrStore)
	mockRepo.AssertExpectations(t)
}

func TestItemService_Delete(t *testing.T) {
	mockRepo := new(MockItemRepository)
	publisher := new(MockPublisher)
	service := services.NewItemService(mockRepo, publisher)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "user-123", "item-1").Return(nil).Once()
	publisher.On("Publish", services.EventItemDeleted, mock.Anything).Return(nil).Once()
	assert.NoError(t, service.Delete(ctx, "user-123", "item-1"))

	mockRepo.On("Delete", ctx, "user-456", "item-1").
		Return(fmt.Errorf("item with ID item-1: %w", repositories.ErrNotFound)).Once()
	assert.ErrorIs(t, service.Delete(ctx, "user-456", "item-1"), services.ErrNotFound)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
