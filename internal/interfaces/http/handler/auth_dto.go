package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/application/identity"
)

// SignupRequest represents a teacher signup request
type SignupRequest struct {
	LoginID  string `json:"login_id" binding:"required,min=4,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	LoginID          string     `json:"login_id"`
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	ClassID          *uuid.UUID `json:"class_id,omitempty"`
	StudentNumber    int        `json:"student_number,omitempty"`
	Grade            int        `json:"grade,omitempty"`
	ClassNumber      int        `json:"class_number,omitempty"`
	CurrentPoints    int        `json:"current_points"`
	TotalPoints      int        `json:"total_points"`
	Level            int        `json:"level"`
	EquippedAvatarID *uuid.UUID `json:"equipped_avatar_id,omitempty"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenResponse represents a successful token refresh
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

func toUserResponse(info identity.UserInfo) UserResponse {
	return UserResponse{
		ID:               info.ID,
		LoginID:          info.LoginID,
		Name:             info.Name,
		Role:             info.Role,
		ClassID:          info.ClassID,
		StudentNumber:    info.StudentNumber,
		Grade:            info.Grade,
		ClassNumber:      info.ClassNumber,
		CurrentPoints:    info.CurrentPoints,
		TotalPoints:      info.TotalPoints,
		Level:            info.Level,
		EquippedAvatarID: info.EquippedAvatarID,
	}
}
