package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// Decorator wraps a Creator with extra behavior.
type Decorator func(next pardna.Creator) pardna.Creator

// Chain applies decorators to c. The first decorator is the outermost.
func Chain(c pardna.Creator, decorators ...Decorator) pardna.Creator {
	for i := len(decorators) - 1; i >= 0; i-- {
		c = decorators[i](c)
	}
	return c
}

// Logging logs every create call with its outcome and duration.
func Logging(logger *slog.Logger) Decorator {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next pardna.Creator) pardna.Creator {
		return pardna.CreatorFunc(func(ctx context.Context, p pardna.Payload) (string, error) {
			start := time.Now()
			id, err := next.CreatePardna(ctx, p)
			attrs := []any{
				slog.String("frequency", string(p.PaymentFrequency)),
				slog.Int("participants", len(p.Participants)),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.WarnContext(ctx, "create pardna failed", append(attrs, slog.Any("error", err))...)
				return id, err
			}
			logger.InfoContext(ctx, "created pardna", append(attrs, slog.String("id", id))...)
			return id, nil
		})
	}
}

// Recover turns a panicking creator into a P200 error.
func Recover(logger *slog.Logger) Decorator {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next pardna.Creator) pardna.Creator {
		return pardna.CreatorFunc(func(ctx context.Context, p pardna.Payload) (id string, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "creator panic",
						"panic", r,
						"stack", string(debug.Stack()))
					id = ""
					err = errors.New("P200").WithDetail(fmt.Sprintf("creator panicked: %v", r))
				}
			}()
			return next.CreatePardna(ctx, p)
		})
	}
}
