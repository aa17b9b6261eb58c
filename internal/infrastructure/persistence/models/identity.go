package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/identity"
)

// UserModel is the GORM model for users
type UserModel struct {
	BaseModel
	LoginID          string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash     string     `gorm:"type:varchar(255);not null"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Role             string     `gorm:"type:varchar(20);not null;index"`
	ClassID          *uuid.UUID `gorm:"type:uuid;index"`
	StudentNumber    int        `gorm:"not null;default:0"`
	Grade            int        `gorm:"not null;default:0"`
	ClassNumber      int        `gorm:"not null;default:0"`
	CurrentPoints    int        `gorm:"not null;default:0"`
	TotalPoints      int        `gorm:"not null;default:0"`
	EquippedAvatarID *uuid.UUID `gorm:"type:uuid"`
	LastLoginAt      *time.Time
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:       m.entity(),
		LoginID:          m.LoginID,
		PasswordHash:     m.PasswordHash,
		Name:             m.Name,
		Role:             identity.Role(m.Role),
		ClassID:          m.ClassID,
		StudentNumber:    m.StudentNumber,
		Grade:            m.Grade,
		ClassNumber:      m.ClassNumber,
		CurrentPoints:    m.CurrentPoints,
		TotalPoints:      m.TotalPoints,
		EquippedAvatarID: m.EquippedAvatarID,
		LastLoginAt:      m.LastLoginAt,
	}
}

// UserModelFromDomain converts domain User to UserModel
func UserModelFromDomain(user *identity.User) *UserModel {
	return &UserModel{
		BaseModel:        baseModelFrom(user.BaseEntity),
		LoginID:          user.LoginID,
		PasswordHash:     user.PasswordHash,
		Name:             user.Name,
		Role:             string(user.Role),
		ClassID:          user.ClassID,
		StudentNumber:    user.StudentNumber,
		Grade:            user.Grade,
		ClassNumber:      user.ClassNumber,
		CurrentPoints:    user.CurrentPoints,
		TotalPoints:      user.TotalPoints,
		EquippedAvatarID: user.EquippedAvatarID,
		LastLoginAt:      user.LastLoginAt,
	}
}
