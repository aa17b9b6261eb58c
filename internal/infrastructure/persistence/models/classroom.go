package models

import (
	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/classroom"
)

// ClassModel is the GORM model for classes
type ClassModel struct {
	BaseModel
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Code        string    `gorm:"type:char(4);not null;uniqueIndex"`
	Grade       int       `gorm:"not null;default:0"`
	ClassNumber int       `gorm:"not null;default:0"`
}

// TableName specifies the table name
func (ClassModel) TableName() string {
	return "classes"
}

// ToDomain converts ClassModel to domain Class
func (m *ClassModel) ToDomain() *classroom.Class {
	return &classroom.Class{
		BaseEntity:  m.entity(),
		TeacherID:   m.TeacherID,
		Name:        m.Name,
		Code:        m.Code,
		Grade:       m.Grade,
		ClassNumber: m.ClassNumber,
	}
}

// ClassModelFromDomain converts domain Class to ClassModel
func ClassModelFromDomain(class *classroom.Class) *ClassModel {
	return &ClassModel{
		BaseModel:   baseModelFrom(class.BaseEntity),
		TeacherID:   class.TeacherID,
		Name:        class.Name,
		Code:        class.Code,
		Grade:       class.Grade,
		ClassNumber: class.ClassNumber,
	}
}
