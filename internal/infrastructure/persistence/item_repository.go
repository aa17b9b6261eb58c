package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/domain/shop"
	"github.com/safe/backend/internal/infrastructure/persistence/models"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

var _ shop.ItemRepository = (*GormItemRepository)(nil)

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Create creates a new catalog item
func (r *GormItemRepository) Create(ctx context.Context, item *shop.Item) error {
	model := models.ItemModelFromDomain(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing catalog item
func (r *GormItemRepository) Update(ctx context.Context, item *shop.Item) error {
	model := models.ItemModelFromDomain(item)
	result := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("id = ?", item.ID).
		Select("Name", "Type", "Price", "ImageURL", "IsActive", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a catalog item by ID
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a catalog item by ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns catalog items, optionally only active ones
func (r *GormItemRepository) FindAll(ctx context.Context, activeOnly bool) ([]*shop.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.ItemModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.ItemModel
	if err := query.Order("price ASC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*shop.Item, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToDomain())
	}
	return items, nil
}

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

var _ shop.InventoryRepository = (*GormInventoryRepository)(nil)

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Create inserts an acquisition. The composite unique index on
// (user_id, item_id) turns a duplicate purchase into ErrAlreadyOwned.
func (r *GormInventoryRepository) Create(ctx context.Context, entry *shop.InventoryEntry) error {
	model := models.InventoryEntryModelFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyOwned
		}
		return err
	}
	return nil
}

// FindByUser returns a user's inventory, newest first
func (r *GormInventoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*shop.InventoryEntry, error) {
	var rows []models.InventoryEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("acquired_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*shop.InventoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}
	return entries, nil
}

// Exists checks if the user already owns the item
func (r *GormInventoryRepository) Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InventoryEntryModel{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}
