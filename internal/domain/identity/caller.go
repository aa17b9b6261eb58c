package identity

import "github.com/google/uuid"

// Caller captures who is performing an operation. It is built from the
// verified token by the HTTP layer and passed down explicitly so services
// never reach into transport state for authorization decisions.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

// IsTeacher returns true for teacher callers
func (c Caller) IsTeacher() bool {
	return c.Role == RoleTeacher
}

// IsStudent returns true for student callers
func (c Caller) IsStudent() bool {
	return c.Role == RoleStudent
}
