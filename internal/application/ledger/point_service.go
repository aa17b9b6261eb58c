package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safe/backend/internal/domain/classroom"
	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/ledger"
	"github.com/safe/backend/internal/domain/shared"
)

// PointService handles direct teacher grants and ledger queries
type PointService struct {
	txRepo    ledger.TransactionRepository
	userRepo  identity.UserRepository
	classRepo classroom.ClassRepository
	logger    *zap.Logger
}

// NewPointService creates a new point service
func NewPointService(
	txRepo ledger.TransactionRepository,
	userRepo identity.UserRepository,
	classRepo classroom.ClassRepository,
	logger *zap.Logger,
) *PointService {
	return &PointService{
		txRepo:    txRepo,
		userRepo:  userRepo,
		classRepo: classRepo,
		logger:    logger,
	}
}

// Award grants points to a student in a class the caller owns
func (s *PointService) Award(ctx context.Context, caller identity.Caller, input AwardPointsInput) (*AwardResult, error) {
	if !caller.IsTeacher() {
		return nil, shared.ErrForbidden
	}
	if input.Points < MinAwardPoints || input.Points > MaxAwardPoints {
		return nil, shared.NewDomainError("INVALID_POINTS",
			fmt.Sprintf("Award points must be between %d and %d", MinAwardPoints, MaxAwardPoints))
	}

	student, err := s.userRepo.FindByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, shared.NewDomainError("NOT_A_STUDENT", "Points can only be awarded to students")
	}
	if student.ClassID == nil {
		return nil, shared.NewDomainError("NOT_ENROLLED", "Student is not enrolled in a class")
	}

	class, err := s.classRepo.FindByID(ctx, *student.ClassID)
	if err != nil {
		return nil, err
	}
	if !class.IsOwnedBy(caller.UserID) {
		return nil, shared.ErrForbidden
	}

	if err := s.userRepo.CreditPoints(ctx, student.ID, input.Points); err != nil {
		return nil, err
	}

	tx := s.recordAward(ctx, student, input, caller.UserID)

	s.logger.Info("Points awarded",
		zap.String("student_id", student.ID.String()),
		zap.String("teacher_id", caller.UserID.String()),
		zap.Int("points", input.Points))

	after := student.CurrentPoints + input.Points
	totalAfter := student.TotalPoints + input.Points
	result := &AwardResult{
		StudentID:     student.ID,
		Points:        input.Points,
		CurrentPoints: after,
		TotalPoints:   totalAfter,
		Level:         totalAfter/identity.PointsPerLevel + 1,
	}
	if tx != nil {
		result.TransactionID = tx.ID
	}
	return result, nil
}

// List returns ledger entries. Students only see their own; teachers may
// query any student in a class they own.
func (s *PointService) List(ctx context.Context, caller identity.Caller, input ListTransactionsInput) (*TransactionListResponse, error) {
	userID := caller.UserID
	if input.UserID != nil && *input.UserID != caller.UserID {
		if !caller.IsTeacher() {
			return nil, shared.ErrForbidden
		}
		student, err := s.userRepo.FindByID(ctx, *input.UserID)
		if err != nil {
			return nil, err
		}
		if student.ClassID == nil {
			return nil, shared.ErrForbidden
		}
		class, err := s.classRepo.FindByID(ctx, *student.ClassID)
		if err != nil {
			return nil, err
		}
		if !class.IsOwnedBy(caller.UserID) {
			return nil, shared.ErrForbidden
		}
		userID = student.ID
	}

	filter := ledger.NewTransactionFilter()
	if input.Page > 0 || input.PageSize > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
		}
		filter = filter.WithType(*input.Type)
	}

	txs, total, err := s.txRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, ToTransactionResponse(tx))
	}

	return &TransactionListResponse{
		Transactions: responses,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.Limit(),
	}, nil
}

// recordAward appends the ledger entry for a grant. The credit has already
// been applied, so a ledger failure is logged instead of undoing it.
func (s *PointService) recordAward(ctx context.Context, student *identity.User, input AwardPointsInput, teacherID uuid.UUID) *ledger.PointTransaction {
	tx, err := ledger.NewAwardTransaction(student.ID, input.Points, student.CurrentPoints, teacherID, input.Reason)
	if err == nil {
		err = s.txRepo.Create(ctx, tx)
	}
	if err != nil {
		s.logger.Error("Failed to record award transaction",
			zap.String("student_id", student.ID.String()),
			zap.Error(err))
		return nil
	}
	return tx
}
