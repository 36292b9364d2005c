package observability

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type FeedWriter interface {
	Append(message string)
}

// FeedCore renders entries as single "[LEVEL] message key=value" lines and
// appends them to a user-visible feed.
type FeedCore struct {
	zapcore.LevelEnabler
	feed   FeedWriter
	fields []zapcore.Field
}

func NewFeedCore(feed FeedWriter, level zapcore.LevelEnabler) *FeedCore {
	return &FeedCore{LevelEnabler: level, feed: feed}
}

func (c *FeedCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &FeedCore{LevelEnabler: c.LevelEnabler, feed: c.feed, fields: merged}
}

func (c *FeedCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *FeedCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(entry.Level.CapitalString())
	b.WriteString("] ")
	b.WriteString(entry.Message)

	for _, f := range c.fields {
		writeField(&b, f)
	}
	for _, f := range fields {
		writeField(&b, f)
	}

	c.feed.Append(b.String())
	return nil
}

func (c *FeedCore) Sync() error {
	return nil
}

func writeField(b *strings.Builder, f zapcore.Field) {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	for k, v := range enc.Fields {
		fmt.Fprintf(b, " %s=%v", k, v)
	}
}

// WithFeed returns a logger that writes to both the original core and the
// feed.
func WithFeed(logger *zap.Logger, feed FeedWriter, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing feed level: %w", err)
	}

	core := NewFeedCore(feed, lvl)
	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	})), nil
}
