package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appgallery "github.com/safe/backend/internal/application/gallery"
	"github.com/safe/backend/internal/domain/gallery"
)

// CreatePostRequest represents a post submission
type CreatePostRequest struct {
	ImageURL string `json:"image_url" binding:"required,max=2048"`
	Caption  string `json:"caption" binding:"max=500"`
}

// ListPostsRequest represents post listing filters
type ListPostsRequest struct {
	ClassID  string `form:"class_id" binding:"omitempty,uuid"`
	AuthorID string `form:"author_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ReviewPostRequest represents a teacher's approval decision
type ReviewPostRequest struct {
	Feedback string `json:"feedback" binding:"max=500"`
	Points   int    `json:"points" binding:"required"`
}

// RejectPostRequest represents a teacher's rejection decision
type RejectPostRequest struct {
	Feedback string `json:"feedback" binding:"max=500"`
}

// PresignUploadRequest represents a request for a direct-upload URL
type PresignUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}

// PostHandler handles gallery post HTTP requests
type PostHandler struct {
	BaseHandler
	postService   *appgallery.PostService
	uploadService *appgallery.UploadService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *appgallery.PostService, uploadService *appgallery.UploadService) *PostHandler {
	return &PostHandler{
		postService:   postService,
		uploadService: uploadService,
	}
}

// Create submits a new post by the calling student
func (h *PostHandler) Create(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), caller, appgallery.CreatePostInput{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, post)
}

// List returns posts visible to the caller with optional filters
func (h *PostHandler) List(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	input := appgallery.ListPostsInput{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.ClassID != "" {
		classID, err := uuid.Parse(req.ClassID)
		if err != nil {
			h.BadRequest(c, "Invalid class ID")
			return
		}
		input.ClassID = &classID
	}
	if req.AuthorID != "" {
		authorID, err := uuid.Parse(req.AuthorID)
		if err != nil {
			h.BadRequest(c, "Invalid author ID")
			return
		}
		input.AuthorID = &authorID
	}
	if req.Status != "" {
		status := gallery.PostStatus(req.Status)
		input.Status = &status
	}

	result, err := h.postService.List(c.Request.Context(), caller, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Posts, result.Total, result.Page, result.PageSize)
}

// Get returns a single post visible to the caller
func (h *PostHandler) Get(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.postService.Get(c.Request.Context(), caller, postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// MarkRead records the author's acknowledgment of a decision
func (h *PostHandler) MarkRead(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.postService.MarkRead(c.Request.Context(), caller, postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// Approve approves a pending post and awards points to its author
func (h *PostHandler) Approve(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req ReviewPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Approve(c.Request.Context(), caller, postID, appgallery.ReviewInput{
		Feedback: req.Feedback,
		Points:   req.Points,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// Reject rejects a pending post without awarding points
func (h *PostHandler) Reject(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post ID")
		return
	}

	var req RejectPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Reject(c.Request.Context(), caller, postID, req.Feedback)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, post)
}

// PresignUpload issues a short-lived URL for a direct image upload
func (h *PostHandler) PresignUpload(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.uploadService.PresignUpload(c.Request.Context(), caller, appgallery.PresignUploadInput{
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
