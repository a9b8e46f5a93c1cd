package handlers

import (
	"todo/internal/auth"
	"todo/internal/services"
	"todo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items. Its routes must sit behind
// middleware.AuthRequired.
type ItemHandler struct {
	service  *services.ItemService
	validate *validation.Validator
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService, validate *validation.Validator) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the item routes on an authenticated router.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleList)
	router.Post("/", h.HandleCreate)
	router.Put("/:id", h.HandleUpdate)
	router.Delete("/:id", h.HandleDelete)
}

// owner returns the caller's user ID from the verified identity.
func owner(c *fiber.Ctx) (string, bool) {
	id, ok := auth.IdentityFrom(c.UserContext())
	return id.UserID, ok
}

// HandleList returns the caller's items.
func (h *ItemHandler) HandleList(c *fiber.Ctx) error {
	ownerID, ok := owner(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	items, err := h.service.List(c.UserContext(), ownerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// HandleCreate creates an item owned by the caller.
func (h *ItemHandler) HandleCreate(c *fiber.Ctx) error {
	ownerID, ok := owner(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req validation.ItemRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, err)
	}

	item, err := h.service.Create(c.UserContext(), ownerID, req.Title, req.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate replaces the title and description of one of the caller's items.
func (h *ItemHandler) HandleUpdate(c *fiber.Ctx) error {
	ownerID, ok := owner(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req validation.ItemRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, err)
	}

	item, err := h.service.Update(c.UserContext(), ownerID, c.Params("id"), req.Title, req.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// HandleDelete deletes one of the caller's items.
func (h *ItemHandler) HandleDelete(c *fiber.Ctx) error {
	ownerID, ok := owner(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := h.service.Delete(c.UserContext(), ownerID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item deleted",
	})
}
