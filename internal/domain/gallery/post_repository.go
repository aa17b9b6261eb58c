package gallery

import (
	"context"

	"github.com/google/uuid"
)

// PostRepository defines the interface for post persistence
type PostRepository interface {
	// Create creates a new post
	Create(ctx context.Context, post *Post) error

	// Update updates an existing post
	Update(ctx context.Context, post *Post) error

	// FindByID finds a post by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// FindAll returns posts matching the filter with a total count
	FindAll(ctx context.Context, filter PostFilter) ([]*Post, int64, error)
}

// PostFilter contains filter options for querying posts
type PostFilter struct {
	// Filter by author
	AuthorID *uuid.UUID

	// Filter by the author's class (teacher review queue)
	ClassID *uuid.UUID

	// Filter by review status
	Status *PostStatus

	// Pagination
	Page     int
	PageSize int
}

// NewPostFilter creates a PostFilter with default pagination
func NewPostFilter() PostFilter {
	return PostFilter{
		Page:     1,
		PageSize: 20,
	}
}

// WithAuthor sets the author filter
func (f PostFilter) WithAuthor(authorID uuid.UUID) PostFilter {
	f.AuthorID = &authorID
	return f
}

// WithClass sets the class filter
func (f PostFilter) WithClass(classID uuid.UUID) PostFilter {
	f.ClassID = &classID
	return f
}

// WithStatus sets the status filter
func (f PostFilter) WithStatus(status PostStatus) PostFilter {
	f.Status = &status
	return f
}

// WithPagination sets pagination parameters
func (f PostFilter) WithPagination(page, pageSize int) PostFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset returns the offset for pagination
func (f PostFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f PostFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
