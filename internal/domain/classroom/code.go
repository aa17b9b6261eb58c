package classroom

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/safe/backend/internal/domain/shared"
)

// DefaultCodeAttempts bounds the random search for a free join code
const DefaultCodeAttempts = 10

var codeRange = big.NewInt(9000)

// AllocateCode draws uniform random codes in [1000, 9999] until exists
// reports a free one, giving up after attempts tries. Exhaustion returns
// ErrCodeExhausted; an exists error is returned as-is.
func AllocateCode(ctx context.Context, attempts int, exists func(ctx context.Context, code string) (bool, error)) (string, error) {
	if attempts <= 0 {
		return "", shared.ErrCodeExhausted
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := rand.Int(rand.Reader, codeRange)
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("%04d", n.Int64()+1000)

		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", shared.ErrCodeExhausted
}
