package deck

import (
	"context"
	"io"
	"log/slog"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// stubProvider is a manual stub implementation of Provider
type stubProvider struct {
	remote            bool
	categoriesFunc    func(ctx context.Context) ([]Category, error)
	questionsFunc     func(ctx context.Context) ([]Question, error)
	checkPasscodeFunc func(ctx context.Context, passcode string) (bool, error)
	publishFunc       func(ctx context.Context, p Publication) (Publication, error)
}

func (s *stubProvider) Remote() bool {
	return s.remote
}

func (s *stubProvider) Categories(ctx context.Context) ([]Category, error) {
	if s.categoriesFunc != nil {
		return s.categoriesFunc(ctx)
	}
	return nil, nil
}

func (s *stubProvider) Questions(ctx context.Context) ([]Question, error) {
	if s.questionsFunc != nil {
		return s.questionsFunc(ctx)
	}
	return nil, nil
}

func (s *stubProvider) CheckPasscode(ctx context.Context, passcode string) (bool, error) {
	if s.checkPasscodeFunc != nil {
		return s.checkPasscodeFunc(ctx, passcode)
	}
	return false, nil
}

func (s *stubProvider) Publish(ctx context.Context, p Publication) (Publication, error) {
	if s.publishFunc != nil {
		return s.publishFunc(ctx, p)
	}
	return p, nil
}
