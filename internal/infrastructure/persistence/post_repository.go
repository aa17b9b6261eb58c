package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/gallery"
	"github.com/safe/backend/internal/domain/shared"
	"github.com/safe/backend/internal/infrastructure/persistence/models"
)

// GormPostRepository implements PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

var _ gallery.PostRepository = (*GormPostRepository)(nil)

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(ctx context.Context, post *gallery.Post) error {
	model := models.PostModelFromDomain(post)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing post
func (r *GormPostRepository) Update(ctx context.Context, post *gallery.Post) error {
	model := models.PostModelFromDomain(post)
	result := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("id = ?", post.ID).
		Select("Status", "Feedback", "AwardedPoints", "ReadAt", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a post by ID
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns posts matching the filter, newest first, with a total
// count. The class filter joins through the author's enrollment.
func (r *GormPostRepository) FindAll(ctx context.Context, filter gallery.PostFilter) ([]*gallery.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PostModel{})

	if filter.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.ClassID != nil {
		query = query.Joins("JOIN users ON users.id = posts.author_id").
			Where("users.class_id = ?", *filter.ClassID)
	}
	if filter.Status != nil {
		query = query.Where("posts.status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PostModel
	err := query.
		Order("posts.created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*gallery.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].ToDomain())
	}
	return posts, total, nil
}
