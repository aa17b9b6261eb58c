package ledger

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for ledger persistence.
// The ledger is append-only; there is no update or delete.
type TransactionRepository interface {
	// Create appends a transaction record
	Create(ctx context.Context, tx *PointTransaction) error

	// FindByID finds a transaction by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PointTransaction, error)

	// FindByUser returns a user's transactions matching the filter,
	// newest first, with a total count
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*PointTransaction, int64, error)
}

// TransactionFilter contains filter options for querying the ledger
type TransactionFilter struct {
	// Filter by transaction type
	Type *TransactionType

	// Pagination
	Page     int
	PageSize int
}

// NewTransactionFilter creates a TransactionFilter with default pagination
func NewTransactionFilter() TransactionFilter {
	return TransactionFilter{
		Page:     1,
		PageSize: 20,
	}
}

// WithType sets the type filter
func (f TransactionFilter) WithType(txType TransactionType) TransactionFilter {
	f.Type = &txType
	return f
}

// WithPagination sets pagination parameters
func (f TransactionFilter) WithPagination(page, pageSize int) TransactionFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset returns the offset for pagination
func (f TransactionFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f TransactionFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
