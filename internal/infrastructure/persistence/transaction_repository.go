package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/ledger"
	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements TransactionRepository using GORM.
// The ledger is append-only, so there is no update or delete path.
type GormTransactionRepository struct {
	db *gorm.DB
}

var _ ledger.TransactionRepository = (*GormTransactionRepository)(nil)

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create appends a transaction record
func (r *GormTransactionRepository) Create(ctx context.Context, tx *ledger.PointTransaction) error {
	model := models.PointTransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a transaction by ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.PointTransaction, error) {
	var model models.PointTransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser returns a user's transactions matching the filter, newest
// first, with a total count
func (r *GormTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter ledger.TransactionFilter) ([]*ledger.PointTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PointTransactionModel{}).
		Where("user_id = ?", userID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PointTransactionModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	txs := make([]*ledger.PointTransaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, rows[i].ToDomain())
	}
	return txs, total, nil
}
