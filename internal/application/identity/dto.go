package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/identity"
)

// SignupInput contains input for teacher registration
type SignupInput struct {
	LoginID  string
	Password string
	Name     string
}

// LoginInput contains login credentials
type LoginInput struct {
	LoginID  string
	Password string
}

// LoginResult contains tokens and user info after a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// RefreshTokenInput contains input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the rotated token pair
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains input for logout
type LogoutInput struct {
	UserID uuid.UUID
	JTI    string
	TTL    time.Duration
}

// ChangePasswordInput contains input for a password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UserInfo is the user representation exposed to the HTTP layer
type UserInfo struct {
	ID               uuid.UUID
	LoginID          string
	Name             string
	Role             string
	ClassID          *uuid.UUID
	StudentNumber    int
	Grade            int
	ClassNumber      int
	CurrentPoints    int
	TotalPoints      int
	Level            int
	EquippedAvatarID *uuid.UUID
}

// ToUserInfo converts a domain user to its exposed representation
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:               user.ID,
		LoginID:          user.LoginID,
		Name:             user.Name,
		Role:             string(user.Role),
		ClassID:          user.ClassID,
		StudentNumber:    user.StudentNumber,
		Grade:            user.Grade,
		ClassNumber:      user.ClassNumber,
		CurrentPoints:    user.CurrentPoints,
		TotalPoints:      user.TotalPoints,
		Level:            user.Level(),
		EquippedAvatarID: user.EquippedAvatarID,
	}
}
