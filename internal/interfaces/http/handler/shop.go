package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appshop "github.com/safe/backend/internal/application/shop"
	"github.com/safe/backend/internal/domain/shop"
)

// CreateItemRequest represents a catalog item creation request
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Type     string `json:"type" binding:"required"`
	Price    int    `json:"price" binding:"min=0"`
	ImageURL string `json:"image_url" binding:"omitempty,max=2048"`
}

// UpdateItemRequest represents a partial catalog item update
type UpdateItemRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Price    *int    `json:"price" binding:"omitempty,min=0"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=2048"`
	IsActive *bool   `json:"is_active"`
}

// PurchaseRequest represents a purchase by item ID
type PurchaseRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

// EquipRequest represents equipping an owned avatar item
type EquipRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

// ShopHandler handles catalog, purchase and inventory HTTP requests
type ShopHandler struct {
	BaseHandler
	shopService *appshop.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *appshop.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// CreateItem adds an item to the catalog
func (h *ShopHandler) CreateItem(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.shopService.CreateItem(c.Request.Context(), caller, appshop.CreateItemInput{
		Name:     req.Name,
		Type:     shop.ItemType(req.Type),
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// UpdateItem applies a partial update to a catalog item
func (h *ShopHandler) UpdateItem(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.shopService.UpdateItem(c.Request.Context(), caller, itemID, appshop.UpdateItemInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// DeleteItem removes a catalog item
func (h *ShopHandler) DeleteItem(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.shopService.DeleteItem(c.Request.Context(), caller, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListItems returns the catalog, hiding inactive items from students
func (h *ShopHandler) ListItems(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.shopService.ListItems(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// GetItem returns a single catalog item
func (h *ShopHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.shopService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Purchase debits the caller's balance and adds the item to their inventory
func (h *ShopHandler) Purchase(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	result, err := h.shopService.Purchase(c.Request.Context(), caller, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListInventory returns the caller's owned items
func (h *ShopHandler) ListInventory(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entries, err := h.shopService.ListInventory(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// Equip sets an owned avatar item as the caller's equipped avatar
func (h *ShopHandler) Equip(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req EquipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.shopService.Equip(c.Request.Context(), caller, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Avatar equipped"})
}

// Unequip clears the caller's equipped avatar
func (h *ShopHandler) Unequip(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.shopService.Unequip(c.Request.Context(), caller); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Avatar unequipped"})
}
