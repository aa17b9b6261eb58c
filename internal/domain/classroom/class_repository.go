package classroom

import (
	"context"

	"github.com/google/uuid"
)

// ClassRepository defines the interface for class persistence
type ClassRepository interface {
	// Create creates a new class
	Create(ctx context.Context, class *Class) error

	// Update updates an existing class
	Update(ctx context.Context, class *Class) error

	// Delete deletes a class by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a class by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Class, error)

	// FindByCode finds a class by its join code
	FindByCode(ctx context.Context, code string) (*Class, error)

	// FindByTeacher returns all classes owned by a teacher
	FindByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*Class, error)

	// ExistsByCode checks if any class uses the code
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// ExistsByCodeExcluding checks if any class other than the given one
	// uses the code. Used when a teacher edits their own class's code.
	ExistsByCodeExcluding(ctx context.Context, code string, classID uuid.UUID) (bool, error)
}
