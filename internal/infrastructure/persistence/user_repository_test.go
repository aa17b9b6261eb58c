package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/safe/backend/internal/domain/shared"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		userID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "login_id", "name", "role", "current_points", "total_points"}).
			AddRow(userID, "1234-1", "학생 1", "student", 7, 15)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(rows)

		user, err := repo.FindByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "1234-1", user.LoginID)
		assert.Equal(t, 7, user.CurrentPoints)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), userID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_DebitPoints(t *testing.T) {
	t.Run("applies debit when balance covers it", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		userID := uuid.New()
		mock.ExpectExec(`UPDATE "users" SET .* WHERE id = .* AND current_points >= .*`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.DebitPoints(context.Background(), userID, 5)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports guard rejection as not applied", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		userID := uuid.New()
		mock.ExpectExec(`UPDATE "users" SET .* WHERE id = .* AND current_points >= .*`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.DebitPoints(context.Background(), userID, 5)

		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestGormUserRepository_CreditPoints(t *testing.T) {
	t.Run("increments both balances", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		userID := uuid.New()
		mock.ExpectExec(`UPDATE "users" SET .*current_points.*total_points.* WHERE id = .*`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CreditPoints(context.Background(), userID, 3)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing user to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET .*`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CreditPoints(context.Background(), uuid.New(), 3)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_CountByClass(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormUserRepository(db)

	classID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE class_id = \$1`).
		WithArgs(classID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountByClass(context.Background(), classID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
