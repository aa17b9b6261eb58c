package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/ledger"
)

// Teacher award bounds for a single grant
const (
	MinAwardPoints = 1
	MaxAwardPoints = 100
)

// AwardPointsInput contains input for a direct teacher grant
type AwardPointsInput struct {
	StudentID uuid.UUID
	Points    int
	Reason    string
}

// AwardResult reports a completed grant
type AwardResult struct {
	StudentID     uuid.UUID `json:"student_id"`
	Points        int       `json:"points"`
	CurrentPoints int       `json:"current_points"`
	TotalPoints   int       `json:"total_points"`
	Level         int       `json:"level"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// ListTransactionsInput contains filter options for the ledger listing
type ListTransactionsInput struct {
	UserID   *uuid.UUID
	Type     *ledger.TransactionType
	Page     int
	PageSize int
}

// TransactionResponse is the ledger entry exposed to the HTTP layer
type TransactionResponse struct {
	ID            uuid.UUID              `json:"id"`
	UserID        uuid.UUID              `json:"user_id"`
	Type          ledger.TransactionType `json:"type"`
	Amount        int                    `json:"amount"`
	SignedAmount  int                    `json:"signed_amount"`
	BalanceBefore int                    `json:"balance_before"`
	BalanceAfter  int                    `json:"balance_after"`
	ReferenceID   *uuid.UUID             `json:"reference_id,omitempty"`
	Description   string                 `json:"description,omitempty"`
	OccurredAt    time.Time              `json:"occurred_at"`
}

// TransactionListResponse is a paginated ledger listing
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// ToTransactionResponse converts a domain transaction to its exposed representation
func ToTransactionResponse(tx *ledger.PointTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		UserID:        tx.UserID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		SignedAmount:  tx.SignedAmount(),
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		ReferenceID:   tx.ReferenceID,
		Description:   tx.Description,
		OccurredAt:    tx.OccurredAt(),
	}
}
