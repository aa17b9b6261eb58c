package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appshop "github.com/safe/backend/internal/application/shop"
	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/shop"
	"github.com/safe/backend/internal/interfaces/http/dto"
)

type shopHandlerFixture struct {
	itemRepo      *MockItemRepository
	inventoryRepo *MockInventoryRepository
	userRepo      *MockUserRepository
	txRepo        *MockTransactionRepository
	student       *identity.User
	item          *shop.Item
}

func newShopHandlerFixture(t *testing.T) *shopHandlerFixture {
	t.Helper()

	classID := uuid.New()
	student, err := identity.NewStudent("1234-1", "123456", "학생 1", classID, 1, 3, 2)
	require.NoError(t, err)
	student.CurrentPoints = 10
	student.TotalPoints = 10

	item, err := shop.NewItem("황금 헬멧", shop.ItemTypeAvatar, 5, "")
	require.NoError(t, err)

	return &shopHandlerFixture{
		itemRepo:      new(MockItemRepository),
		inventoryRepo: new(MockInventoryRepository),
		userRepo:      new(MockUserRepository),
		txRepo:        new(MockTransactionRepository),
		student:       student,
		item:          item,
	}
}

func (f *shopHandlerFixture) router(callerID uuid.UUID, role identity.Role) *gin.Engine {
	svc := appshop.NewShopService(f.itemRepo, f.inventoryRepo, f.userRepo, f.txRepo, zap.NewNop())
	h := NewShopHandler(svc)

	r := gin.New()
	authed := r.Group("", authAs(callerID, role))
	authed.GET("/api/v1/items", h.ListItems)
	authed.POST("/api/v1/items", h.CreateItem)
	authed.PUT("/api/v1/items/:id", h.UpdateItem)
	authed.POST("/api/v1/shop/purchase", h.Purchase)
	authed.GET("/api/v1/inventory", h.ListInventory)
	authed.POST("/api/v1/inventory/equip", h.Equip)
	authed.POST("/api/v1/inventory/unequip", h.Unequip)
	return r
}

func TestShopHandlerPurchase(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.itemRepo.On("FindByID", mock.Anything, f.item.ID).Return(f.item, nil)
	f.userRepo.On("FindByID", mock.Anything, f.student.ID).Return(f.student, nil)
	f.inventoryRepo.On("Exists", mock.Anything, f.student.ID, f.item.ID).Return(false, nil)
	f.userRepo.On("DebitPoints", mock.Anything, f.student.ID, 5).Return(true, nil)
	f.inventoryRepo.On("Create", mock.Anything, mock.AnythingOfType("*shop.InventoryEntry")).Return(nil)
	f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*ledger.PointTransaction")).Return(nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/shop/purchase", PurchaseRequest{ItemID: f.item.ID.String()})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    appshop.PurchaseResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Data.Price)
	assert.Equal(t, 5, resp.Data.RemainingPoints)
}

func TestShopHandlerPurchaseInsufficientPoints(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.student.CurrentPoints = 4
	f.itemRepo.On("FindByID", mock.Anything, f.item.ID).Return(f.item, nil)
	f.userRepo.On("FindByID", mock.Anything, f.student.ID).Return(f.student, nil)
	f.inventoryRepo.On("Exists", mock.Anything, f.student.ID, f.item.ID).Return(false, nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/shop/purchase", PurchaseRequest{ItemID: f.item.ID.String()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeInsufficientPoints)
	f.userRepo.AssertNotCalled(t, "DebitPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestShopHandlerPurchaseAlreadyOwned(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.itemRepo.On("FindByID", mock.Anything, f.item.ID).Return(f.item, nil)
	f.userRepo.On("FindByID", mock.Anything, f.student.ID).Return(f.student, nil)
	f.inventoryRepo.On("Exists", mock.Anything, f.student.ID, f.item.ID).Return(true, nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/shop/purchase", PurchaseRequest{ItemID: f.item.ID.String()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeAlreadyOwned)
}

func TestShopHandlerPurchaseInactiveItem(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.item.IsActive = false
	f.itemRepo.On("FindByID", mock.Anything, f.item.ID).Return(f.item, nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/shop/purchase", PurchaseRequest{ItemID: f.item.ID.String()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeItemInactive)
}

func TestShopHandlerCreateItem(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.itemRepo.On("Create", mock.Anything, mock.AnythingOfType("*shop.Item")).Return(nil)

	r := f.router(uuid.New(), identity.RoleTeacher)
	w := postJSON(t, r, "/api/v1/items", CreateItemRequest{
		Name:  "황금 헬멧",
		Type:  "avatar",
		Price: 5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestShopHandlerCreateItemStudentForbidden(t *testing.T) {
	f := newShopHandlerFixture(t)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/items", CreateItemRequest{
		Name:  "황금 헬멧",
		Type:  "avatar",
		Price: 5,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShopHandlerListItemsStudentSeesActiveOnly(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.itemRepo.On("FindAll", mock.Anything, true).Return([]*shop.Item{f.item}, nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	f.itemRepo.AssertCalled(t, "FindAll", mock.Anything, true)
}

func TestShopHandlerEquipNotOwned(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.itemRepo.On("FindByID", mock.Anything, f.item.ID).Return(f.item, nil)
	f.inventoryRepo.On("Exists", mock.Anything, f.student.ID, f.item.ID).Return(false, nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	w := postJSON(t, r, "/api/v1/inventory/equip", EquipRequest{ItemID: f.item.ID.String()})

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.userRepo.AssertNotCalled(t, "SetEquippedAvatar", mock.Anything, mock.Anything, mock.Anything)
}

func TestShopHandlerUnequip(t *testing.T) {
	f := newShopHandlerFixture(t)
	f.userRepo.On("SetEquippedAvatar", mock.Anything, f.student.ID, (*uuid.UUID)(nil)).Return(nil)

	r := f.router(f.student.ID, identity.RoleStudent)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/unequip", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	f.userRepo.AssertExpectations(t)
}
