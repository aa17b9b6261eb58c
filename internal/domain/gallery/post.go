package gallery

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shared"
)

// PostStatus represents the review status of a post
type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

// IsValid checks if the status is valid
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected:
		return true
	}
	return false
}

// Review point bounds for a single post approval
const (
	MinApprovalPoints = 1
	MaxApprovalPoints = 3
)

// Post is a student's photo evidence of safe behavior. It starts pending and
// moves exactly once to approved or rejected.
type Post struct {
	shared.BaseEntity
	AuthorID      uuid.UUID
	ImageURL      string
	Caption       string
	Status        PostStatus
	Feedback      string
	AwardedPoints int
	ReadAt        *time.Time
}

// NewPost creates a pending post
func NewPost(authorID uuid.UUID, imageURL, caption string) (*Post, error) {
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AUTHOR_ID", "Author ID cannot be empty")
	}
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot be empty")
	}
	if len(imageURL) > 500 {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	if len(caption) > 500 {
		return nil, shared.NewDomainError("INVALID_CAPTION", "Caption cannot exceed 500 characters")
	}

	return &Post{
		BaseEntity: shared.NewBaseEntity(),
		AuthorID:   authorID,
		ImageURL:   imageURL,
		Caption:    strings.TrimSpace(caption),
		Status:     PostStatusPending,
	}, nil
}

// Approve reviews the post positively and fixes the points it earns.
// Only pending posts can be approved.
func (p *Post) Approve(feedback string, points int) error {
	if p.Status != PostStatusPending {
		return shared.ErrAlreadyProcessed
	}
	if points < MinApprovalPoints || points > MaxApprovalPoints {
		return shared.NewDomainError("INVALID_POINTS", "Approval points must be between 1 and 3")
	}

	p.Status = PostStatusApproved
	p.Feedback = strings.TrimSpace(feedback)
	p.AwardedPoints = points
	p.Touch()
	return nil
}

// Reject reviews the post negatively. Only pending posts can be rejected.
func (p *Post) Reject(feedback string) error {
	if p.Status != PostStatusPending {
		return shared.ErrAlreadyProcessed
	}

	p.Status = PostStatusRejected
	p.Feedback = strings.TrimSpace(feedback)
	p.Touch()
	return nil
}

// MarkRead stamps the author's acknowledgment of the review result.
// Calling it again keeps the first timestamp.
func (p *Post) MarkRead() {
	if p.ReadAt != nil {
		return
	}
	now := time.Now()
	p.ReadAt = &now
	p.UpdatedAt = now
}

// IsPending returns true while the post awaits review
func (p *Post) IsPending() bool {
	return p.Status == PostStatusPending
}
