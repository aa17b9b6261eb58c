package shop

import (
	"strings"

	"github.com/safe/backend/internal/domain/shared"
)

// ItemType categorizes shop items
type ItemType string

const (
	ItemTypeAvatar ItemType = "avatar"
	ItemTypeBadge  ItemType = "badge"
)

// Item is a purchasable entry in the shop catalog
type Item struct {
	shared.BaseEntity
	Name     string
	Type     ItemType
	Price    int
	ImageURL string
	IsActive bool
}

// NewItem creates an active catalog item
func NewItem(name string, itemType ItemType, price int, imageURL string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 100 characters")
	}
	if strings.TrimSpace(string(itemType)) == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Item type cannot be empty")
	}
	if price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       itemType,
		Price:      price,
		ImageURL:   strings.TrimSpace(imageURL),
		IsActive:   true,
	}, nil
}

// SetName changes the item name
func (i *Item) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 100 characters")
	}
	i.Name = name
	i.Touch()
	return nil
}

// SetPrice changes the item price
func (i *Item) SetPrice(price int) error {
	if price < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}
	i.Price = price
	i.Touch()
	return nil
}

// SetImageURL changes the item image
func (i *Item) SetImageURL(imageURL string) {
	i.ImageURL = strings.TrimSpace(imageURL)
	i.Touch()
}

// Activate puts the item on sale
func (i *Item) Activate() {
	i.IsActive = true
	i.Touch()
}

// Deactivate pulls the item from sale without removing owned copies
func (i *Item) Deactivate() {
	i.IsActive = false
	i.Touch()
}
