package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/gallery"
)

// PostModel is the GORM model for gallery posts
type PostModel struct {
	BaseModel
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL      string    `gorm:"type:varchar(500);not null"`
	Caption       string    `gorm:"type:varchar(500)"`
	Status        string    `gorm:"type:varchar(20);not null;index;default:'pending'"`
	Feedback      string    `gorm:"type:varchar(500)"`
	AwardedPoints int       `gorm:"not null;default:0"`
	ReadAt        *time.Time
}

// TableName specifies the table name
func (PostModel) TableName() string {
	return "posts"
}

// ToDomain converts PostModel to domain Post
func (m *PostModel) ToDomain() *gallery.Post {
	return &gallery.Post{
		BaseEntity:    m.entity(),
		AuthorID:      m.AuthorID,
		ImageURL:      m.ImageURL,
		Caption:       m.Caption,
		Status:        gallery.PostStatus(m.Status),
		Feedback:      m.Feedback,
		AwardedPoints: m.AwardedPoints,
		ReadAt:        m.ReadAt,
	}
}

// PostModelFromDomain converts domain Post to PostModel
func PostModelFromDomain(post *gallery.Post) *PostModel {
	return &PostModel{
		BaseModel:     baseModelFrom(post.BaseEntity),
		AuthorID:      post.AuthorID,
		ImageURL:      post.ImageURL,
		Caption:       post.Caption,
		Status:        string(post.Status),
		Feedback:      post.Feedback,
		AwardedPoints: post.AwardedPoints,
		ReadAt:        post.ReadAt,
	}
}
