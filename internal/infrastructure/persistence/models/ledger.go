package models

import (
	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/ledger"
)

// PointTransactionModel is the GORM model for ledger entries
type PointTransactionModel struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_transactions_user_created"`
	Type          string     `gorm:"type:varchar(30);not null;index"`
	Amount        int        `gorm:"not null"`
	BalanceBefore int        `gorm:"not null"`
	BalanceAfter  int        `gorm:"not null"`
	ReferenceID   *uuid.UUID `gorm:"type:uuid;index"`
	Description   string     `gorm:"type:varchar(255)"`
	ActorID       *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the table name
func (PointTransactionModel) TableName() string {
	return "point_transactions"
}

// ToDomain converts PointTransactionModel to domain PointTransaction
func (m *PointTransactionModel) ToDomain() *ledger.PointTransaction {
	return &ledger.PointTransaction{
		BaseEntity:    m.entity(),
		UserID:        m.UserID,
		Type:          ledger.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		ReferenceID:   m.ReferenceID,
		Description:   m.Description,
		ActorID:       m.ActorID,
	}
}

// PointTransactionModelFromDomain converts domain PointTransaction to PointTransactionModel
func PointTransactionModelFromDomain(tx *ledger.PointTransaction) *PointTransactionModel {
	return &PointTransactionModel{
		BaseModel:     baseModelFrom(tx.BaseEntity),
		UserID:        tx.UserID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		ReferenceID:   tx.ReferenceID,
		Description:   tx.Description,
		ActorID:       tx.ActorID,
	}
}
