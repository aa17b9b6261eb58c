package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appledger "github.com/safe/backend/internal/application/ledger"
	"github.com/safe/backend/internal/domain/ledger"
)

// AwardPointsRequest represents a manual point grant by a teacher
type AwardPointsRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Points    int    `json:"points" binding:"required"`
	Reason    string `json:"reason" binding:"max=200"`
}

// ListTransactionsRequest represents ledger listing filters
type ListTransactionsRequest struct {
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	Type     string `form:"type" binding:"omitempty"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PointHandler handles point award and ledger HTTP requests
type PointHandler struct {
	BaseHandler
	pointService *appledger.PointService
}

// NewPointHandler creates a new point handler
func NewPointHandler(pointService *appledger.PointService) *PointHandler {
	return &PointHandler{
		pointService: pointService,
	}
}

// Award grants points to a student in the caller's class
func (h *PointHandler) Award(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	result, err := h.pointService.Award(c.Request.Context(), caller, appledger.AwardPointsInput{
		StudentID: studentID,
		Points:    req.Points,
		Reason:    req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListTransactions returns ledger entries visible to the caller
func (h *PointHandler) ListTransactions(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	input := appledger.ListTransactionsInput{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			h.BadRequest(c, "Invalid user ID")
			return
		}
		input.UserID = &userID
	}
	if req.Type != "" {
		txType := ledger.TransactionType(req.Type)
		input.Type = &txType
	}

	result, err := h.pointService.List(c.Request.Context(), caller, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Transactions, result.Total, result.Page, result.PageSize)
}
