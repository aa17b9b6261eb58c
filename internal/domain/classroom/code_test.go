package classroom

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safe/backend/internal/domain/shared"
)

func TestAllocateCode_FirstTry(t *testing.T) {
	calls := 0
	code, err := AllocateCode(context.Background(), DefaultCodeAttempts, func(ctx context.Context, code string) (bool, error) {
		calls++
		return false, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, ValidCode(code))
}

func TestAllocateCode_RetriesUntilFree(t *testing.T) {
	calls := 0
	code, err := AllocateCode(context.Background(), DefaultCodeAttempts, func(ctx context.Context, code string) (bool, error) {
		calls++
		return calls < 4, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.True(t, ValidCode(code))
}

func TestAllocateCode_Exhaustion(t *testing.T) {
	calls := 0
	_, err := AllocateCode(context.Background(), DefaultCodeAttempts, func(ctx context.Context, code string) (bool, error) {
		calls++
		return true, nil
	})

	assert.ErrorIs(t, err, shared.ErrCodeExhausted)
	assert.Equal(t, DefaultCodeAttempts, calls)
}

func TestAllocateCode_PropagatesLookupError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := AllocateCode(context.Background(), DefaultCodeAttempts, func(ctx context.Context, code string) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestAllocateCode_ZeroAttempts(t *testing.T) {
	_, err := AllocateCode(context.Background(), 0, func(ctx context.Context, code string) (bool, error) {
		t.Fatal("exists should not be called")
		return false, nil
	})

	assert.ErrorIs(t, err, shared.ErrCodeExhausted)
}

func TestAllocateCode_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AllocateCode(ctx, DefaultCodeAttempts, func(ctx context.Context, code string) (bool, error) {
		return false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllocateCode_CodesInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := AllocateCode(context.Background(), 1, func(ctx context.Context, code string) (bool, error) {
			return false, nil
		})
		assert.NoError(t, err)
		assert.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}
