package classroom

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/classroom"
	"github.com/safe/backend/internal/domain/identity"
)

// CreateClassInput contains input for class creation
type CreateClassInput struct {
	Name        string
	Grade       int
	ClassNumber int
}

// UpdateClassInput contains optional fields for a class update
type UpdateClassInput struct {
	Name        *string
	Code        *string
	Grade       *int
	ClassNumber *int
}

// JoinClassInput contains input for a student joining by code
type JoinClassInput struct {
	Code string
}

// ClassResponse is the class representation exposed to the HTTP layer
type ClassResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Grade        int       `json:"grade"`
	ClassNumber  int       `json:"class_number"`
	StudentCount int64     `json:"student_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentResponse is the roster entry exposed to teachers
type StudentResponse struct {
	ID            uuid.UUID `json:"id"`
	LoginID       string    `json:"login_id"`
	Name          string    `json:"name"`
	StudentNumber int       `json:"student_number"`
	CurrentPoints int       `json:"current_points"`
	TotalPoints   int       `json:"total_points"`
	Level         int       `json:"level"`
}

// JoinClassResult contains the generated credentials for a new student
type JoinClassResult struct {
	UserID        uuid.UUID `json:"user_id"`
	LoginID       string    `json:"login_id"`
	Password      string    `json:"password"`
	Name          string    `json:"name"`
	StudentNumber int       `json:"student_number"`
	ClassID       uuid.UUID `json:"class_id"`
	ClassName     string    `json:"class_name"`
}

// ToClassResponse converts a domain class to its exposed representation
func ToClassResponse(class *classroom.Class, studentCount int64) ClassResponse {
	return ClassResponse{
		ID:           class.ID,
		Name:         class.Name,
		Code:         class.Code,
		Grade:        class.Grade,
		ClassNumber:  class.ClassNumber,
		StudentCount: studentCount,
		CreatedAt:    class.CreatedAt,
	}
}

// ToStudentResponse converts a domain user to a roster entry
func ToStudentResponse(user *identity.User) StudentResponse {
	return StudentResponse{
		ID:            user.ID,
		LoginID:       user.LoginID,
		Name:          user.Name,
		StudentNumber: user.StudentNumber,
		CurrentPoints: user.CurrentPoints,
		TotalPoints:   user.TotalPoints,
		Level:         user.Level(),
	}
}
