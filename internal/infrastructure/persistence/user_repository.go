package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

var _ identity.UserRepository = (*GormUserRepository)(nil)

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateLogin
		}
		return err
	}
	return nil
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLoginID finds a user by login ID
func (r *GormUserRepository) FindByLoginID(ctx context.Context, loginID string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "login_id = ?", loginID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByLoginID checks if a login ID is taken
func (r *GormUserRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("login_id = ?", loginID).
		Count(&count).Error
	return count > 0, err
}

// FindByClass returns the students of a class ordered by student number
func (r *GormUserRepository) FindByClass(ctx context.Context, classID uuid.UUID) ([]*identity.User, error) {
	var rows []models.UserModel
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("student_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].ToDomain())
	}
	return users, nil
}

// CountByClass counts the students of a class
func (r *GormUserRepository) CountByClass(ctx context.Context, classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return count, err
}

// CreditPoints atomically adds points to both the spendable and lifetime
// balance
func (r *GormUserRepository) CreditPoints(ctx context.Context, userID uuid.UUID, points int) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_points": gorm.Expr("current_points + ?", points),
			"total_points":   gorm.Expr("total_points + ?", points),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DebitPoints atomically subtracts points from the spendable balance. The
// guard in the WHERE clause makes overdrafts impossible under concurrency;
// false with a nil error means the balance did not cover the debit.
func (r *GormUserRepository) DebitPoints(ctx context.Context, userID uuid.UUID, points int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ? AND current_points >= ?", userID, points).
		Updates(map[string]interface{}{
			"current_points": gorm.Expr("current_points - ?", points),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RefundPoints atomically returns points to the spendable balance. The
// lifetime balance is untouched because it only ever grows with earnings.
func (r *GormUserRepository) RefundPoints(ctx context.Context, userID uuid.UUID, points int) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_points": gorm.Expr("current_points + ?", points),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetEquippedAvatar sets or clears the user's equipped avatar
func (r *GormUserRepository) SetEquippedAvatar(ctx context.Context, userID uuid.UUID, itemID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"equipped_avatar_id": itemID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
