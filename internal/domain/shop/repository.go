package shop

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for catalog persistence
type ItemRepository interface {
	// Create creates a new item
	Create(ctx context.Context, item *Item) error

	// Update updates an existing item
	Update(ctx context.Context, item *Item) error

	// Delete deletes an item by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindAll returns catalog items, optionally only active ones
	FindAll(ctx context.Context, activeOnly bool) ([]*Item, error)
}

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	// Create inserts an acquisition. A unique violation on
	// (user_id, item_id) is returned as shared.ErrAlreadyOwned.
	Create(ctx context.Context, entry *InventoryEntry) error

	// FindByUser returns a user's inventory, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*InventoryEntry, error)

	// Exists checks if the user already owns the item
	Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}
