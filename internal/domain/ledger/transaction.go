package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shared"
)

// TransactionType represents the type of point transaction
type TransactionType string

const (
	// TransactionTypeEarnApproval is points earned from an approved post
	TransactionTypeEarnApproval TransactionType = "EARN_APPROVAL"
	// TransactionTypeEarnAward is points granted directly by a teacher
	TransactionTypeEarnAward TransactionType = "EARN_AWARD"
	// TransactionTypeSpendPurchase is points spent in the shop
	TransactionTypeSpendPurchase TransactionType = "SPEND_PURCHASE"
	// TransactionTypeRefundPurchase is points returned by a rolled-back purchase
	TransactionTypeRefundPurchase TransactionType = "REFUND_PURCHASE"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeEarnApproval,
		TransactionTypeEarnAward,
		TransactionTypeSpendPurchase,
		TransactionTypeRefundPurchase:
		return true
	}
	return false
}

// IsEarn returns true if this type increases the lifetime balance
func (t TransactionType) IsEarn() bool {
	return t == TransactionTypeEarnApproval || t == TransactionTypeEarnAward
}

// IsSpend returns true if this type decreases the spendable balance
func (t TransactionType) IsSpend() bool {
	return t == TransactionTypeSpendPurchase
}

// PointTransaction is an immutable record of one point movement. Corrections
// are made with new transactions, never by editing existing rows.
type PointTransaction struct {
	shared.BaseEntity
	UserID        uuid.UUID
	Type          TransactionType
	Amount        int // always positive, direction determined by type
	BalanceBefore int // spendable balance before the movement
	BalanceAfter  int // spendable balance after the movement
	ReferenceID   *uuid.UUID
	Description   string
	ActorID       *uuid.UUID // user who triggered the movement
}

// NewPointTransaction creates a ledger record
func NewPointTransaction(userID uuid.UUID, txType TransactionType, amount, balanceBefore, balanceAfter int) (*PointTransaction, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Invalid point transaction type")
	}
	if amount <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if balanceBefore < 0 || balanceAfter < 0 {
		return nil, shared.NewDomainError("INVALID_BALANCE", "Balances cannot be negative")
	}

	return &PointTransaction{
		BaseEntity:    shared.NewBaseEntity(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
	}, nil
}

// WithReference attaches the source document (post, item or award)
func (t *PointTransaction) WithReference(referenceID uuid.UUID) *PointTransaction {
	t.ReferenceID = &referenceID
	return t
}

// WithDescription attaches a human-readable description
func (t *PointTransaction) WithDescription(description string) *PointTransaction {
	t.Description = strings.TrimSpace(description)
	return t
}

// WithActor attaches the user who triggered the movement
func (t *PointTransaction) WithActor(actorID uuid.UUID) *PointTransaction {
	t.ActorID = &actorID
	return t
}

// NewApprovalTransaction records points earned from an approved post
func NewApprovalTransaction(userID uuid.UUID, amount, balanceBefore int, postID, teacherID uuid.UUID) (*PointTransaction, error) {
	tx, err := NewPointTransaction(userID, TransactionTypeEarnApproval, amount, balanceBefore, balanceBefore+amount)
	if err != nil {
		return nil, err
	}
	return tx.WithReference(postID).WithActor(teacherID), nil
}

// NewAwardTransaction records a discretionary grant from a teacher
func NewAwardTransaction(userID uuid.UUID, amount, balanceBefore int, teacherID uuid.UUID, reason string) (*PointTransaction, error) {
	tx, err := NewPointTransaction(userID, TransactionTypeEarnAward, amount, balanceBefore, balanceBefore+amount)
	if err != nil {
		return nil, err
	}
	return tx.WithActor(teacherID).WithDescription(reason), nil
}

// NewPurchaseTransaction records points spent on an item
func NewPurchaseTransaction(userID uuid.UUID, amount, balanceBefore int, itemID uuid.UUID) (*PointTransaction, error) {
	if balanceBefore < amount {
		return nil, shared.ErrInsufficientPoints
	}
	tx, err := NewPointTransaction(userID, TransactionTypeSpendPurchase, amount, balanceBefore, balanceBefore-amount)
	if err != nil {
		return nil, err
	}
	return tx.WithReference(itemID), nil
}

// NewRefundTransaction records a compensating credit for a failed purchase
func NewRefundTransaction(userID uuid.UUID, amount, balanceBefore int, itemID uuid.UUID) (*PointTransaction, error) {
	tx, err := NewPointTransaction(userID, TransactionTypeRefundPurchase, amount, balanceBefore, balanceBefore+amount)
	if err != nil {
		return nil, err
	}
	return tx.WithReference(itemID), nil
}

// SignedAmount returns the movement with its direction applied
func (t *PointTransaction) SignedAmount() int {
	if t.Type.IsSpend() {
		return -t.Amount
	}
	return t.Amount
}

// OccurredAt returns when the movement happened
func (t *PointTransaction) OccurredAt() time.Time {
	return t.CreatedAt
}
