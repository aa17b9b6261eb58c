package gallery

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safe/backend/internal/domain/classroom"
	"github.com/safe/backend/internal/domain/gallery"
	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/ledger"
	"github.com/safe/backend/internal/domain/shared"
)

// PostService handles the post gallery and its review workflow
type PostService struct {
	postRepo  gallery.PostRepository
	userRepo  identity.UserRepository
	classRepo classroom.ClassRepository
	txRepo    ledger.TransactionRepository
	logger    *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(
	postRepo gallery.PostRepository,
	userRepo identity.UserRepository,
	classRepo classroom.ClassRepository,
	txRepo ledger.TransactionRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		classRepo: classRepo,
		txRepo:    txRepo,
		logger:    logger,
	}
}

// Create submits a new pending post for the calling student
func (s *PostService) Create(ctx context.Context, caller identity.Caller, input CreatePostInput) (*PostResponse, error) {
	if !caller.IsStudent() {
		return nil, shared.ErrForbidden
	}

	post, err := gallery.NewPost(caller.UserID, input.ImageURL, input.Caption)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Post submitted",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", post.AuthorID.String()))

	resp := ToPostResponse(post)
	return &resp, nil
}

// List returns posts visible to the caller. Students only see their own
// posts; teachers browse a class they own, optionally filtered by status.
func (s *PostService) List(ctx context.Context, caller identity.Caller, input ListPostsInput) (*PostListResponse, error) {
	filter := gallery.NewPostFilter()
	if input.Page > 0 || input.PageSize > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown post status")
		}
		filter = filter.WithStatus(*input.Status)
	}

	switch {
	case caller.IsStudent():
		filter = filter.WithAuthor(caller.UserID)
	case input.ClassID != nil:
		if _, err := s.ownedClass(ctx, caller, *input.ClassID); err != nil {
			return nil, err
		}
		filter = filter.WithClass(*input.ClassID)
		if input.AuthorID != nil {
			filter = filter.WithAuthor(*input.AuthorID)
		}
	default:
		return nil, shared.NewDomainError("MISSING_CLASS_ID", "Teachers must specify a class to browse")
	}

	posts, total, err := s.postRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, ToPostResponse(post))
	}

	return &PostListResponse{
		Posts:    responses,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// Get returns a single post if the caller may see it
func (s *PostService) Get(ctx context.Context, caller identity.Caller, postID uuid.UUID) (*PostResponse, error) {
	post, err := s.visiblePost(ctx, caller, postID)
	if err != nil {
		return nil, err
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// MarkRead stamps the author's acknowledgment of a review result.
// Only the author can acknowledge, and repeat calls keep the first stamp.
func (s *PostService) MarkRead(ctx context.Context, caller identity.Caller, postID uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != caller.UserID {
		return nil, shared.ErrForbidden
	}

	if post.ReadAt == nil {
		post.MarkRead()
		if err := s.postRepo.Update(ctx, post); err != nil {
			return nil, err
		}
	}

	resp := ToPostResponse(post)
	return &resp, nil
}

// Approve approves a pending post and credits the awarded points to the
// author. The caller must own the author's class and the points must stay
// within the per-post review bounds.
func (s *PostService) Approve(ctx context.Context, caller identity.Caller, postID uuid.UUID, input ReviewInput) (*PostResponse, error) {
	post, author, err := s.reviewablePost(ctx, caller, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Approve(input.Feedback, input.Points); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreditPoints(ctx, author.ID, input.Points); err != nil {
		return nil, err
	}

	s.recordApproval(ctx, author, post, input.Points, caller.UserID)

	s.logger.Info("Post approved",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", author.ID.String()),
		zap.Int("points", input.Points))

	resp := ToPostResponse(post)
	return &resp, nil
}

// Reject rejects a pending post with feedback. No points move.
func (s *PostService) Reject(ctx context.Context, caller identity.Caller, postID uuid.UUID, feedback string) (*PostResponse, error) {
	post, _, err := s.reviewablePost(ctx, caller, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Reject(feedback); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Post rejected", zap.String("post_id", post.ID.String()))

	resp := ToPostResponse(post)
	return &resp, nil
}

// recordApproval appends the ledger entry for an approval. The credit has
// already been applied, so a ledger failure is logged instead of undoing it.
func (s *PostService) recordApproval(ctx context.Context, author *identity.User, post *gallery.Post, points int, teacherID uuid.UUID) {
	tx, err := ledger.NewApprovalTransaction(author.ID, points, author.CurrentPoints, post.ID, teacherID)
	if err == nil {
		err = s.txRepo.Create(ctx, tx)
	}
	if err != nil {
		s.logger.Error("Failed to record approval transaction",
			zap.String("post_id", post.ID.String()),
			zap.Error(err))
	}
}

// reviewablePost loads a post together with its author and checks the
// caller owns the author's class
func (s *PostService) reviewablePost(ctx context.Context, caller identity.Caller, postID uuid.UUID) (*gallery.Post, *identity.User, error) {
	if !caller.IsTeacher() {
		return nil, nil, shared.ErrForbidden
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	author, err := s.userRepo.FindByID(ctx, post.AuthorID)
	if err != nil {
		return nil, nil, err
	}
	if author.ClassID == nil {
		return nil, nil, shared.ErrForbidden
	}

	if _, err := s.ownedClass(ctx, caller, *author.ClassID); err != nil {
		return nil, nil, err
	}

	return post, author, nil
}

// visiblePost loads a post and checks read access for the caller
func (s *PostService) visiblePost(ctx context.Context, caller identity.Caller, postID uuid.UUID) (*gallery.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if caller.IsStudent() {
		if post.AuthorID != caller.UserID {
			return nil, shared.ErrForbidden
		}
		return post, nil
	}

	author, err := s.userRepo.FindByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author.ClassID == nil {
		return nil, shared.ErrForbidden
	}
	if _, err := s.ownedClass(ctx, caller, *author.ClassID); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) ownedClass(ctx context.Context, caller identity.Caller, classID uuid.UUID) (*classroom.Class, error) {
	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !class.IsOwnedBy(caller.UserID) {
		return nil, shared.ErrForbidden
	}
	return class, nil
}
