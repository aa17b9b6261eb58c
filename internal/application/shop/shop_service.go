package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/ledger"
	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/domain/shop"
)

// ShopService handles the catalog, purchases and inventory
type ShopService struct {
	itemRepo      shop.ItemRepository
	inventoryRepo shop.InventoryRepository
	userRepo      identity.UserRepository
	txRepo        ledger.TransactionRepository
	logger        *zap.Logger
}

// NewShopService creates a new shop service
func NewShopService(
	itemRepo shop.ItemRepository,
	inventoryRepo shop.InventoryRepository,
	userRepo identity.UserRepository,
	txRepo ledger.TransactionRepository,
	logger *zap.Logger,
) *ShopService {
	return &ShopService{
		itemRepo:      itemRepo,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		txRepo:        txRepo,
		logger:        logger,
	}
}

// CreateItem adds a catalog item. Teachers only.
func (s *ShopService) CreateItem(ctx context.Context, caller identity.Caller, input CreateItemInput) (*ItemResponse, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}

	item, err := shop.NewItem(input.Name, input.Type, input.Price, input.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name))

	resp := ToItemResponse(item)
	return &resp, nil
}

// UpdateItem applies partial changes to a catalog item. Teachers only.
func (s *ShopService) UpdateItem(ctx context.Context, caller identity.Caller, itemID uuid.UUID, input UpdateItemInput) (*ItemResponse, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := item.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Price != nil {
		if err := item.SetPrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.ImageURL != nil {
		item.SetImageURL(*input.ImageURL)
	}
	if input.IsActive != nil {
		if *input.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// DeleteItem removes a catalog item. Teachers only. Inventory entries that
// reference the item are kept; owners do not lose what they bought.
func (s *ShopService) DeleteItem(ctx context.Context, caller identity.Caller, itemID uuid.UUID) error {
	if !caller.IsTeacher() {
		return shared.ErrForbidden
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info("Catalog item deleted", zap.String("item_id", itemID.String()))
	return nil
}

// ListItems returns the catalog. Students only see active items.
func (s *ShopService) ListItems(ctx context.Context, caller identity.Caller) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, caller.IsStudent())
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses, nil
}

// GetItem returns a single catalog item
func (s *ShopService) GetItem(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// Purchase buys an active item for the calling student. The debit only
// applies when the balance covers the price; if the inventory insert then
// fails, the debit is compensated with a refund so the balance is never
// left short without the item.
func (s *ShopService) Purchase(ctx context.Context, caller identity.Caller, itemID uuid.UUID) (*PurchaseResult, error) {
	if !caller.IsStudent() {
		return nil, shared.ErrForbidden
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, shared.ErrItemInactive
	}

	owned, err := s.inventoryRepo.Exists(ctx, caller.UserID, item.ID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, shared.ErrAlreadyOwned
	}

	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanAfford(item.Price) {
		return nil, shared.ErrInsufficientPoints
	}

	applied, err := s.userRepo.DebitPoints(ctx, user.ID, item.Price)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost a race with a concurrent spend since the read above.
		return nil, shared.ErrInsufficientPoints
	}

	entry, err := shop.NewInventoryEntry(user.ID, item.ID)
	if err == nil {
		err = s.inventoryRepo.Create(ctx, entry)
	}
	if err != nil {
		s.compensate(ctx, user, item, err)
		if errors.Is(err, shared.ErrAlreadyOwned) {
			return nil, shared.ErrAlreadyOwned
		}
		return nil, err
	}

	tx := s.recordPurchase(ctx, user, item)

	s.logger.Info("Purchase completed",
		zap.String("user_id", user.ID.String()),
		zap.String("item_id", item.ID.String()),
		zap.Int("price", item.Price))

	result := &PurchaseResult{
		ItemID:          item.ID,
		Price:           item.Price,
		RemainingPoints: user.CurrentPoints - item.Price,
		AcquiredAt:      entry.AcquiredAt,
	}
	if tx != nil {
		result.TransactionID = tx.ID
	}
	return result, nil
}

// ListInventory returns the caller's owned items, newest first
func (s *ShopService) ListInventory(ctx context.Context, caller identity.Caller) ([]InventoryEntryResponse, error) {
	entries, err := s.inventoryRepo.FindByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToInventoryEntryResponse(entry))
	}
	return responses, nil
}

// Equip sets the caller's equipped avatar. The caller must own the item.
func (s *ShopService) Equip(ctx context.Context, caller identity.Caller, itemID uuid.UUID) error {
	owned, err := s.inventoryRepo.Exists(ctx, caller.UserID, itemID)
	if err != nil {
		return err
	}
	if !owned {
		return shared.NewDomainError("NOT_OWNED", "Item is not in your inventory")
	}

	return s.userRepo.SetEquippedAvatar(ctx, caller.UserID, &itemID)
}

// Unequip clears the caller's equipped avatar
func (s *ShopService) Unequip(ctx context.Context, caller identity.Caller) error {
	return s.userRepo.SetEquippedAvatar(ctx, caller.UserID, nil)
}

// compensate refunds a debit whose purchase could not complete and appends
// the matching refund ledger entry
func (s *ShopService) compensate(ctx context.Context, user *identity.User, item *shop.Item, cause error) {
	s.logger.Warn("Purchase failed after debit, refunding",
		zap.String("user_id", user.ID.String()),
		zap.String("item_id", item.ID.String()),
		zap.Int("price", item.Price),
		zap.Error(cause))

	if err := s.userRepo.RefundPoints(ctx, user.ID, item.Price); err != nil {
		// The debit stands without its item. This needs manual correction,
		// so log loudly with everything an operator needs.
		s.logger.Error("Refund failed, balance inconsistent",
			zap.String("user_id", user.ID.String()),
			zap.String("item_id", item.ID.String()),
			zap.Int("price", item.Price),
			zap.Error(err))
		return
	}

	debited := user.CurrentPoints - item.Price
	tx, err := ledger.NewRefundTransaction(user.ID, item.Price, debited, item.ID)
	if err == nil {
		err = s.txRepo.Create(ctx, tx)
	}
	if err != nil {
		s.logger.Error("Failed to record refund transaction",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}
}

// recordPurchase appends the ledger entry for a completed purchase. The
// debit and inventory insert already happened, so a ledger failure is
// logged instead of undoing them.
func (s *ShopService) recordPurchase(ctx context.Context, user *identity.User, item *shop.Item) *ledger.PointTransaction {
	tx, err := ledger.NewPurchaseTransaction(user.ID, item.Price, user.CurrentPoints, item.ID)
	if err == nil {
		err = s.txRepo.Create(ctx, tx)
	}
	if err != nil {
		s.logger.Error("Failed to record purchase transaction",
			zap.String("user_id", user.ID.String()),
			zap.String("item_id", item.ID.String()),
			zap.Error(err))
		return nil
	}
	return tx
}
