package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shop"
)

// ItemModel is the GORM model for catalog items
type ItemModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null"`
	Type     string `gorm:"type:varchar(20);not null;index"`
	Price    int    `gorm:"not null;default:0"`
	ImageURL string `gorm:"type:varchar(500)"`
	IsActive bool   `gorm:"not null;default:true;index"`
}

// TableName specifies the table name
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts ItemModel to domain Item
func (m *ItemModel) ToDomain() *shop.Item {
	return &shop.Item{
		BaseEntity: m.entity(),
		Name:       m.Name,
		Type:       shop.ItemType(m.Type),
		Price:      m.Price,
		ImageURL:   m.ImageURL,
		IsActive:   m.IsActive,
	}
}

// ItemModelFromDomain converts domain Item to ItemModel
func ItemModelFromDomain(item *shop.Item) *ItemModel {
	return &ItemModel{
		BaseModel: baseModelFrom(item.BaseEntity),
		Name:      item.Name,
		Type:      string(item.Type),
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		IsActive:  item.IsActive,
	}
}

// InventoryEntryModel is the GORM model for owned items. The composite
// unique index backs the single-purchase guarantee.
type InventoryEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_user_item"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_user_item"`
	AcquiredAt time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (InventoryEntryModel) TableName() string {
	return "inventory_entries"
}

// ToDomain converts InventoryEntryModel to domain InventoryEntry
func (m *InventoryEntryModel) ToDomain() *shop.InventoryEntry {
	return &shop.InventoryEntry{
		ID:         m.ID,
		UserID:     m.UserID,
		ItemID:     m.ItemID,
		AcquiredAt: m.AcquiredAt,
	}
}

// InventoryEntryModelFromDomain converts domain InventoryEntry to InventoryEntryModel
func InventoryEntryModelFromDomain(entry *shop.InventoryEntry) *InventoryEntryModel {
	return &InventoryEntryModel{
		ID:         entry.ID,
		UserID:     entry.UserID,
		ItemID:     entry.ItemID,
		AcquiredAt: entry.AcquiredAt,
	}
}
