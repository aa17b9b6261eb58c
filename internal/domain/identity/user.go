package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/safe/backend/internal/domain/shared"
)

// Role represents the role of a user
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Password cost for bcrypt
const bcryptCost = 12

// PointsPerLevel is the number of lifetime points per level step
const PointsPerLevel = 10

// User is the aggregate root for accounts. Teachers own classes; students
// belong to one class and carry a point balance.
type User struct {
	shared.BaseEntity
	LoginID          string
	PasswordHash     string
	Name             string
	Role             Role
	ClassID          *uuid.UUID
	StudentNumber    int
	Grade            int
	ClassNumber      int
	CurrentPoints    int
	TotalPoints      int
	EquippedAvatarID *uuid.UUID
	LastLoginAt      *time.Time
}

// NewTeacher creates a teacher account
func NewTeacher(loginID, password, name string) (*User, error) {
	if err := validateLoginID(loginID); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		LoginID:      strings.ToLower(strings.TrimSpace(loginID)),
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         RoleTeacher,
	}, nil
}

// NewStudent creates a student account enrolled in a class. The login ID is
// derived by the caller from the class code and student number.
func NewStudent(loginID, password, name string, classID uuid.UUID, studentNumber, grade, classNumber int) (*User, error) {
	if err := validateLoginID(loginID); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if classID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASS_ID", "Class ID cannot be empty")
	}
	if studentNumber <= 0 {
		return nil, shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number must be positive")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:    shared.NewBaseEntity(),
		LoginID:       strings.ToLower(strings.TrimSpace(loginID)),
		PasswordHash:  hash,
		Name:          strings.TrimSpace(name),
		Role:          RoleStudent,
		ClassID:       &classID,
		StudentNumber: studentNumber,
		Grade:         grade,
		ClassNumber:   classNumber,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without an old password check
func (u *User) SetPassword(newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = hash
	u.Touch()
	return nil
}

// IsTeacher returns true for teacher accounts
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// IsStudent returns true for student accounts
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// Level computes the gamification level from lifetime points
func (u *User) Level() int {
	return u.TotalPoints/PointsPerLevel + 1
}

// Credit adds earned points to both the spendable and lifetime balances.
// Used only for in-memory views; the persisted balances are updated by the
// repository so concurrent earns do not lose updates.
func (u *User) Credit(points int) error {
	if points <= 0 {
		return shared.NewDomainError("INVALID_POINTS", "Points must be positive")
	}
	u.CurrentPoints += points
	u.TotalPoints += points
	u.Touch()
	return nil
}

// CanAfford checks the spendable balance against a price
func (u *User) CanAfford(price int) bool {
	return u.CurrentPoints >= price
}

// Equip sets the equipped avatar item
func (u *User) Equip(itemID uuid.UUID) {
	u.EquippedAvatarID = &itemID
	u.Touch()
}

// Unequip clears the equipped avatar item
func (u *User) Unequip() {
	u.EquippedAvatarID = nil
	u.Touch()
}

// RecordLogin records a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

func validateLoginID(loginID string) error {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return shared.NewDomainError("INVALID_LOGIN_ID", "Login ID cannot be empty")
	}
	if len(loginID) < 3 {
		return shared.NewDomainError("INVALID_LOGIN_ID", "Login ID must be at least 3 characters")
	}
	if len(loginID) > 100 {
		return shared.NewDomainError("INVALID_LOGIN_ID", "Login ID cannot exceed 100 characters")
	}

	loginIDRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	if !loginIDRegex.MatchString(loginID) {
		return shared.NewDomainError("INVALID_LOGIN_ID", "Login ID can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

// ValidatePassword enforces the password policy. The minimum is six
// characters so generated student credentials remain valid.
func ValidatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
