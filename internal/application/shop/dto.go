package shop

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shop"
)

// CreateItemInput contains input for catalog item creation
type CreateItemInput struct {
	Name     string
	Type     shop.ItemType
	Price    int
	ImageURL string
}

// UpdateItemInput contains optional fields for a catalog item update
type UpdateItemInput struct {
	Name     *string
	Price    *int
	ImageURL *string
	IsActive *bool
}

// ItemResponse is the catalog item representation exposed to the HTTP layer
type ItemResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Type      shop.ItemType `json:"type"`
	Price     int           `json:"price"`
	ImageURL  string        `json:"image_url,omitempty"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
}

// InventoryEntryResponse is one owned item in a user's inventory
type InventoryEntryResponse struct {
	ItemID     uuid.UUID `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// PurchaseResult reports a completed purchase and the remaining balance
type PurchaseResult struct {
	ItemID          uuid.UUID `json:"item_id"`
	Price           int       `json:"price"`
	RemainingPoints int       `json:"remaining_points"`
	TransactionID   uuid.UUID `json:"transaction_id"`
	AcquiredAt      time.Time `json:"acquired_at"`
}

// ToItemResponse converts a domain item to its exposed representation
func ToItemResponse(item *shop.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
	}
}

// ToInventoryEntryResponse converts a domain inventory entry
func ToInventoryEntryResponse(entry *shop.InventoryEntry) InventoryEntryResponse {
	return InventoryEntryResponse{
		ItemID:     entry.ItemID,
		AcquiredAt: entry.AcquiredAt,
	}
}
