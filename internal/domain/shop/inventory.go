package shop

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shared"
)

// InventoryEntry records an item owned by a user. The (UserID, ItemID) pair
// is unique; the database constraint is the source of truth and its
// violation surfaces as ErrAlreadyOwned.
type InventoryEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ItemID     uuid.UUID
	AcquiredAt time.Time
}

// NewInventoryEntry records an acquisition
func NewInventoryEntry(userID, itemID uuid.UUID) (*InventoryEntry, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM_ID", "Item ID cannot be empty")
	}

	return &InventoryEntry{
		ID:         uuid.New(),
		UserID:     userID,
		ItemID:     itemID,
		AcquiredAt: time.Now(),
	}, nil
}
