package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appclassroom "github.com/safe/backend/internal/application/classroom"
)

// CreateClassRequest represents a class creation request
type CreateClassRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Grade       int    `json:"grade" binding:"omitempty,min=0"`
	ClassNumber int    `json:"class_number" binding:"omitempty,min=0"`
}

// UpdateClassRequest represents a partial class update
type UpdateClassRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Code        *string `json:"code" binding:"omitempty,len=4"`
	Grade       *int    `json:"grade" binding:"omitempty,min=0"`
	ClassNumber *int    `json:"class_number" binding:"omitempty,min=0"`
}

// JoinClassRequest represents a student joining by class code
type JoinClassRequest struct {
	Code string `json:"code" binding:"required,len=4"`
}

// ClassHandler handles class management HTTP requests
type ClassHandler struct {
	BaseHandler
	classService *appclassroom.ClassService
}

// NewClassHandler creates a new class handler
func NewClassHandler(classService *appclassroom.ClassService) *ClassHandler {
	return &ClassHandler{
		classService: classService,
	}
}

// Create creates a class owned by the calling teacher
func (h *ClassHandler) Create(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	class, err := h.classService.Create(c.Request.Context(), caller, appclassroom.CreateClassInput{
		Name:        req.Name,
		Grade:       req.Grade,
		ClassNumber: req.ClassNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, class)
}

// List returns the calling teacher's classes
func (h *ClassHandler) List(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	classes, err := h.classService.List(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, classes)
}

// Get returns a single class
func (h *ClassHandler) Get(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid class ID")
		return
	}

	class, err := h.classService.Get(c.Request.Context(), caller, classID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}

// Update applies a partial update, including class code changes
func (h *ClassHandler) Update(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid class ID")
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	class, err := h.classService.Update(c.Request.Context(), caller, classID, appclassroom.UpdateClassInput{
		Name:        req.Name,
		Code:        req.Code,
		Grade:       req.Grade,
		ClassNumber: req.ClassNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}

// Delete removes a class owned by the calling teacher
func (h *ClassHandler) Delete(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid class ID")
		return
	}

	if err := h.classService.Delete(c.Request.Context(), caller, classID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListStudents returns the roster of a class
func (h *ClassHandler) ListStudents(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid class ID")
		return
	}

	students, err := h.classService.ListStudents(c.Request.Context(), caller, classID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, students)
}

// ResolveCode looks up a class by its 4-digit code without authentication
func (h *ClassHandler) ResolveCode(c *gin.Context) {
	class, err := h.classService.ResolveCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}

// Join enrolls a new student into the class matching the code and
// returns the generated credentials
func (h *ClassHandler) Join(c *gin.Context) {
	var req JoinClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.classService.Join(c.Request.Context(), appclassroom.JoinClassInput{
		Code: req.Code,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
