package classroom

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shared"
)

var codePattern = regexp.MustCompile(`^\d{4}$`)

// Class represents a classroom owned by a teacher. Students join it with the
// 4-digit code.
type Class struct {
	shared.BaseEntity
	TeacherID   uuid.UUID
	Name        string
	Code        string
	Grade       int
	ClassNumber int
}

// NewClass creates a class with an already-allocated join code
func NewClass(teacherID uuid.UUID, name, code string, grade, classNumber int) (*Class, error) {
	if teacherID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TEACHER_ID", "Teacher ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Class name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Class name cannot exceed 100 characters")
	}
	if !ValidCode(code) {
		return nil, shared.NewDomainError("INVALID_CODE", "Class code must be exactly 4 digits")
	}
	if grade < 0 || classNumber < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Grade and class number cannot be negative")
	}

	return &Class{
		BaseEntity:  shared.NewBaseEntity(),
		TeacherID:   teacherID,
		Name:        name,
		Code:        code,
		Grade:       grade,
		ClassNumber: classNumber,
	}, nil
}

// Rename changes the class name
func (c *Class) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Class name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Class name cannot exceed 100 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetCode changes the join code. Uniqueness against other classes is the
// repository's concern; format is validated here.
func (c *Class) SetCode(code string) error {
	if !ValidCode(code) {
		return shared.NewDomainError("INVALID_CODE", "Class code must be exactly 4 digits")
	}
	c.Code = code
	c.Touch()
	return nil
}

// SetGrade updates the grade and class number
func (c *Class) SetGrade(grade, classNumber int) error {
	if grade < 0 || classNumber < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Grade and class number cannot be negative")
	}
	c.Grade = grade
	c.ClassNumber = classNumber
	c.Touch()
	return nil
}

// IsOwnedBy checks class ownership
func (c *Class) IsOwnedBy(teacherID uuid.UUID) bool {
	return c.TeacherID == teacherID
}

// ValidCode reports whether a string is a well-formed 4-digit join code
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
