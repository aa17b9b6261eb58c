package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByLoginID finds a user by login ID
	FindByLoginID(ctx context.Context, loginID string) (*User, error)

	// ExistsByLoginID checks if a login ID is already taken
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)

	// FindByClass returns all students of a class ordered by student number
	FindByClass(ctx context.Context, classID uuid.UUID) ([]*User, error)

	// CountByClass returns the number of students enrolled in a class
	CountByClass(ctx context.Context, classID uuid.UUID) (int64, error)

	// CreditPoints atomically adds earned points to both current_points and
	// total_points of a user.
	CreditPoints(ctx context.Context, userID uuid.UUID, points int) error

	// DebitPoints atomically subtracts points from current_points, guarded
	// by current_points >= points. It reports whether the debit was applied;
	// false with a nil error means the guard rejected it.
	DebitPoints(ctx context.Context, userID uuid.UUID, points int) (bool, error)

	// RefundPoints atomically adds points back to current_points only.
	// Used to compensate a debit whose follow-up write failed; total_points
	// is untouched because the earn was never reversed.
	RefundPoints(ctx context.Context, userID uuid.UUID, points int) error

	// SetEquippedAvatar sets or clears (nil) the equipped avatar item
	SetEquippedAvatar(ctx context.Context, userID uuid.UUID, itemID *uuid.UUID) error
}
