package gallery

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/gallery"
)

// CreatePostInput contains input for post creation
type CreatePostInput struct {
	ImageURL string
	Caption  string
}

// ListPostsInput contains filter options for listing posts
type ListPostsInput struct {
	ClassID  *uuid.UUID
	AuthorID *uuid.UUID
	Status   *gallery.PostStatus
	Page     int
	PageSize int
}

// ReviewInput contains input for approving or rejecting a post
type ReviewInput struct {
	Feedback string
	Points   int
}

// PostResponse is the post representation exposed to the HTTP layer
type PostResponse struct {
	ID            uuid.UUID          `json:"id"`
	AuthorID      uuid.UUID          `json:"author_id"`
	ImageURL      string             `json:"image_url"`
	Caption       string             `json:"caption"`
	Status        gallery.PostStatus `json:"status"`
	Feedback      string             `json:"feedback,omitempty"`
	AwardedPoints int                `json:"awarded_points"`
	ReadAt        *time.Time         `json:"read_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// PostListResponse is a paginated post listing
type PostListResponse struct {
	Posts    []PostResponse `json:"posts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToPostResponse converts a domain post to its exposed representation
func ToPostResponse(post *gallery.Post) PostResponse {
	return PostResponse{
		ID:            post.ID,
		AuthorID:      post.AuthorID,
		ImageURL:      post.ImageURL,
		Caption:       post.Caption,
		Status:        post.Status,
		Feedback:      post.Feedback,
		AwardedPoints: post.AwardedPoints,
		ReadAt:        post.ReadAt,
		CreatedAt:     post.CreatedAt,
	}
}
