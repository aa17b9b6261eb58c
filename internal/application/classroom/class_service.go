package classroom

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safe/backend/internal/domain/classroom"
	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/shared"
)

// ClassServiceConfig contains tunables for class management
type ClassServiceConfig struct {
	CodeAttempts           int
	StudentDefaultPassword string
	StudentNamePrefix      string
}

// DefaultClassServiceConfig returns default configuration
func DefaultClassServiceConfig() ClassServiceConfig {
	return ClassServiceConfig{
		CodeAttempts:           classroom.DefaultCodeAttempts,
		StudentDefaultPassword: "123456",
		StudentNamePrefix:      "학생",
	}
}

// ClassService handles class and membership operations
type ClassService struct {
	classRepo classroom.ClassRepository
	userRepo  identity.UserRepository
	config    ClassServiceConfig
	logger    *zap.Logger
}

// NewClassService creates a new class service
func NewClassService(
	classRepo classroom.ClassRepository,
	userRepo identity.UserRepository,
	config ClassServiceConfig,
	logger *zap.Logger,
) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		userRepo:  userRepo,
		config:    config,
		logger:    logger,
	}
}

// Create allocates a join code and creates a class owned by the caller
func (s *ClassService) Create(ctx context.Context, caller identity.Caller, input CreateClassInput) (*ClassResponse, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}

	code, err := classroom.AllocateCode(ctx, s.config.CodeAttempts, s.classRepo.ExistsByCode)
	if err != nil {
		if err == shared.ErrCodeExhausted {
			s.logger.Error("Class code allocation exhausted",
				zap.Int("attempts", s.config.CodeAttempts))
		}
		return nil, err
	}

	class, err := classroom.NewClass(caller.UserID, input.Name, code, input.Grade, input.ClassNumber)
	if err != nil {
		return nil, err
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info("Class created",
		zap.String("class_id", class.ID.String()),
		zap.String("code", class.Code))

	resp := ToClassResponse(class, 0)
	return &resp, nil
}

// Update applies partial changes to a class the caller owns. A code change
// must keep the 4-digit format and stay unique across all other classes.
func (s *ClassService) Update(ctx context.Context, caller identity.Caller, classID uuid.UUID, input UpdateClassInput) (*ClassResponse, error) {
	class, err := s.ownedClass(ctx, caller, classID)
	if err != nil {
		return nil, err
	}

	if input.Code != nil && *input.Code != class.Code {
		if !classroom.ValidCode(*input.Code) {
			return nil, shared.NewDomainError("INVALID_CODE", "Class code must be exactly 4 digits")
		}
		taken, err := s.classRepo.ExistsByCodeExcluding(ctx, *input.Code, class.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.ErrDuplicateCode
		}
		if err := class.SetCode(*input.Code); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		if err := class.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.Grade != nil || input.ClassNumber != nil {
		grade, classNumber := class.Grade, class.ClassNumber
		if input.Grade != nil {
			grade = *input.Grade
		}
		if input.ClassNumber != nil {
			classNumber = *input.ClassNumber
		}
		if err := class.SetGrade(grade, classNumber); err != nil {
			return nil, err
		}
	}

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByClass(ctx, class.ID)
	if err != nil {
		return nil, err
	}

	resp := ToClassResponse(class, count)
	return &resp, nil
}

// Delete removes a class the caller owns
func (s *ClassService) Delete(ctx context.Context, caller identity.Caller, classID uuid.UUID) error {
	class, err := s.ownedClass(ctx, caller, classID)
	if err != nil {
		return err
	}

	if err := s.classRepo.Delete(ctx, class.ID); err != nil {
		return err
	}

	s.logger.Info("Class deleted", zap.String("class_id", classID.String()))
	return nil
}

// List returns the caller's classes with student counts
func (s *ClassService) List(ctx context.Context, caller identity.Caller) ([]ClassResponse, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}

	classes, err := s.classRepo.FindByTeacher(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		count, err := s.userRepo.CountByClass(ctx, class.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, ToClassResponse(class, count))
	}

	return responses, nil
}

// Get returns one class the caller owns
func (s *ClassService) Get(ctx context.Context, caller identity.Caller, classID uuid.UUID) (*ClassResponse, error) {
	class, err := s.ownedClass(ctx, caller, classID)
	if err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByClass(ctx, class.ID)
	if err != nil {
		return nil, err
	}

	resp := ToClassResponse(class, count)
	return &resp, nil
}

// ListStudents returns the roster of a class the caller owns
func (s *ClassService) ListStudents(ctx context.Context, caller identity.Caller, classID uuid.UUID) ([]StudentResponse, error) {
	class, err := s.ownedClass(ctx, caller, classID)
	if err != nil {
		return nil, err
	}

	students, err := s.userRepo.FindByClass(ctx, class.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, ToStudentResponse(student))
	}

	return responses, nil
}

// ResolveCode looks up a class by its join code. Public, used before join.
func (s *ClassService) ResolveCode(ctx context.Context, code string) (*ClassResponse, error) {
	if !classroom.ValidCode(code) {
		return nil, shared.NewDomainError("INVALID_CODE", "Class code must be exactly 4 digits")
	}

	class, err := s.classRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByClass(ctx, class.ID)
	if err != nil {
		return nil, err
	}

	resp := ToClassResponse(class, count)
	return &resp, nil
}

// Join creates a student account in the class behind the code. The student
// number, display name and login ID are derived from the current roster
// size; the password starts at the configured default.
func (s *ClassService) Join(ctx context.Context, input JoinClassInput) (*JoinClassResult, error) {
	if !classroom.ValidCode(input.Code) {
		return nil, shared.NewDomainError("INVALID_CODE", "Class code must be exactly 4 digits")
	}

	class, err := s.classRepo.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByClass(ctx, class.ID)
	if err != nil {
		return nil, err
	}

	studentNumber := int(count) + 1
	name := fmt.Sprintf("%s %d", s.config.StudentNamePrefix, studentNumber)
	loginID := fmt.Sprintf("%s-%d", class.Code, studentNumber)

	student, err := identity.NewStudent(loginID, s.config.StudentDefaultPassword,
		name, class.ID, studentNumber, class.Grade, class.ClassNumber)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student joined class",
		zap.String("class_id", class.ID.String()),
		zap.String("user_id", student.ID.String()),
		zap.Int("student_number", studentNumber))

	return &JoinClassResult{
		UserID:        student.ID,
		LoginID:       student.LoginID,
		Password:      s.config.StudentDefaultPassword,
		Name:          student.Name,
		StudentNumber: studentNumber,
		ClassID:       class.ID,
		ClassName:     class.Name,
	}, nil
}

// ownedClass loads a class and checks the caller owns it
func (s *ClassService) ownedClass(ctx context.Context, caller identity.Caller, classID uuid.UUID) (*classroom.Class, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}

	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if !class.IsOwnedBy(caller.UserID) {
		return nil, shared.ErrForbidden
	}

	return class, nil
}
