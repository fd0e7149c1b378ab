package pardna

import (
	"context"
	"log/slog"
)

// PardnaScreen is the screen shown after a successful create.
const PardnaScreen = "Pardna"

// Creator performs the remote create call and returns the new id.
type Creator interface {
	CreatePardna(ctx context.Context, payload Payload) (string, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, payload Payload) (string, error)

// CreatePardna implements Creator.
func (fn CreatorFunc) CreatePardna(ctx context.Context, payload Payload) (string, error) {
	return fn(ctx, payload)
}

// Navigator moves the front end to another screen.
type Navigator interface {
	Navigate(screen string, params map[string]string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(screen string, params map[string]string)

// Navigate implements Navigator.
func (fn NavigatorFunc) Navigate(screen string, params map[string]string) {
	fn(screen, params)
}

// Reporter receives errors for observability.
type Reporter interface {
	Report(ctx context.Context, err error)
}

// LogReporter reports errors through slog.
type LogReporter struct {
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Report implements Reporter.
func (r LogReporter) Report(ctx context.Context, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(ctx, "pardna create failed", slog.Any("error", err))
}
