package positioning

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// LogPrompter answers settings prompts without a user. The question goes to
// the log and the configured answer is returned.
type LogPrompter struct {
	answer bool
	logger *zap.Logger
}

func NewLogPrompter(answer bool, logger *zap.Logger) *LogPrompter {
	return &LogPrompter{answer: answer, logger: logger}
}

func (p *LogPrompter) Confirm(ctx context.Context, message string) bool {
	p.logger.Warn(message, zap.Bool("answer", p.answer))
	return p.answer
}

type LogWakeLock struct {
	mu      sync.Mutex
	enabled bool
	logger  *zap.Logger
}

func NewLogWakeLock(logger *zap.Logger) *LogWakeLock {
	return &LogWakeLock{logger: logger}
}

func (l *LogWakeLock) Enable() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		l.enabled = true
		l.logger.Info("wake lock enabled")
	}
	return nil
}

func (l *LogWakeLock) Disable() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.enabled {
		l.enabled = false
		l.logger.Info("wake lock released")
	}
	return nil
}

func (l *LogWakeLock) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}
