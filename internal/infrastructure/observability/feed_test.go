package observability_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/logfeed"
)

func TestFeedCore(t *testing.T) {
	t.Run("formats level message and fields", func(t *testing.T) {
		feed := logfeed.New(10)
		logger := zap.New(observability.NewFeedCore(feed, zapcore.InfoLevel))

		logger.Info("location", zap.String("source", "background"), zap.Float64("latitude", 52.1))

		assert.Equal(t, []string{"[INFO] location source=background latitude=52.1"}, feed.Messages())
	})

	t.Run("skips entries below the level", func(t *testing.T) {
		feed := logfeed.New(10)
		logger := zap.New(observability.NewFeedCore(feed, zapcore.WarnLevel))

		logger.Info("quiet")
		logger.Error("loud", zap.Error(errors.New("boom")))

		assert.Equal(t, []string{"[ERROR] loud error=boom"}, feed.Messages())
	})

	t.Run("keeps context fields", func(t *testing.T) {
		feed := logfeed.New(10)
		logger := zap.New(observability.NewFeedCore(feed, zapcore.DebugLevel)).With(zap.String("component", "tracking"))

		logger.Debug("tick", zap.Int("n", 2))

		assert.Equal(t, []string{"[DEBUG] tick component=tracking n=2"}, feed.Messages())
	})
}

func TestWithFeed(t *testing.T) {
	t.Run("tees entries into the feed", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		feed := logfeed.New(10)

		logger, err := observability.WithFeed(zap.New(core), feed, "info")
		require.NoError(t, err)

		logger.Debug("only in logs")
		logger.Info("session started", zap.String("session_id", "abc"))

		assert.Equal(t, 2, logs.Len())
		assert.Equal(t, []string{"[INFO] session started session_id=abc"}, feed.Messages())
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		_, err := observability.WithFeed(zap.NewNop(), logfeed.New(10), "loud")
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("builds json and console loggers", func(t *testing.T) {
		for _, format := range []string{"json", "console"} {
			logger, err := observability.NewLogger("debug", format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
		}
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		_, err := observability.NewLogger("chatty", "json")
		assert.Error(t, err)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		_, err := observability.NewLogger("info", "xml")
		assert.ErrorContains(t, err, "unknown log format")
	})
}
