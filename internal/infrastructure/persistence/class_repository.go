package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/classroom"
	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/infrastructure/persistence/models"
)

// GormClassRepository implements ClassRepository using GORM
type GormClassRepository struct {
	db *gorm.DB
}

var _ classroom.ClassRepository = (*GormClassRepository)(nil)

// NewGormClassRepository creates a new GormClassRepository
func NewGormClassRepository(db *gorm.DB) *GormClassRepository {
	return &GormClassRepository{db: db}
}

// Create creates a new class
func (r *GormClassRepository) Create(ctx context.Context, class *classroom.Class) error {
	model := models.ClassModelFromDomain(class)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateCode
		}
		return err
	}
	return nil
}

// Update updates an existing class
func (r *GormClassRepository) Update(ctx context.Context, class *classroom.Class) error {
	model := models.ClassModelFromDomain(class)
	result := r.db.WithContext(ctx).Model(&models.ClassModel{}).
		Where("id = ?", class.ID).
		Updates(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return shared.ErrDuplicateCode
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a class by ID
func (r *GormClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClassModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a class by ID
func (r *GormClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*classroom.Class, error) {
	var model models.ClassModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a class by its join code
func (r *GormClassRepository) FindByCode(ctx context.Context, code string) (*classroom.Class, error) {
	var model models.ClassModel
	if err := r.db.WithContext(ctx).First(&model, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTeacher returns the classes owned by a teacher, newest first
func (r *GormClassRepository) FindByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*classroom.Class, error) {
	var rows []models.ClassModel
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	classes := make([]*classroom.Class, 0, len(rows))
	for i := range rows {
		classes = append(classes, rows[i].ToDomain())
	}
	return classes, nil
}

// ExistsByCode checks if a join code is taken
func (r *GormClassRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClassModel{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// ExistsByCodeExcluding checks if a join code is taken by any other class
func (r *GormClassRepository) ExistsByCodeExcluding(ctx context.Context, code string, classID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClassModel{}).
		Where("code = ? AND id <> ?", code, classID).
		Count(&count).Error
	return count > 0, err
}
