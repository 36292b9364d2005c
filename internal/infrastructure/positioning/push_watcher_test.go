package positioning_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/domain"
	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
	infra "github.com/marcos-nsantos/field-tracker/internal/infrastructure/positioning"
)

type eventLog struct {
	mu     sync.Mutex
	events []positioning.Event
}

func (l *eventLog) sink(ev positioning.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) all() []positioning.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]positioning.Event(nil), l.events...)
}

func (l *eventLog) kinds() []positioning.EventKind {
	var kinds []positioning.EventKind
	for _, ev := range l.all() {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func fix(ms int64, lat, lon float64) valueobject.NestedSample {
	return valueobject.NestedSample{
		Timestamp: ms,
		Coords:    valueobject.NestedCoords{Latitude: lat, Longitude: lon},
	}
}

func TestPushWatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers pushed fixes to every watch", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())
		var a, b eventLog

		_, err := w.Watch(ctx, positioning.WatchOptions{}, a.sink)
		require.NoError(t, err)
		_, err = w.Watch(ctx, positioning.WatchOptions{}, b.sink)
		require.NoError(t, err)

		require.NoError(t, w.Push(ctx, fix(1000, 52.1, 21.0)))

		require.Len(t, a.all(), 1)
		require.Len(t, b.all(), 1)
		assert.Equal(t, positioning.EventLocation, a.all()[0].Kind)
		assert.Equal(t, fix(1000, 52.1, 21.0), a.all()[0].Sample)
	})

	t.Run("stops delivering after cancel", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())
		var log eventLog

		id, err := w.Watch(ctx, positioning.WatchOptions{}, log.sink)
		require.NoError(t, err)
		require.NoError(t, w.Cancel(id))

		err = w.Push(ctx, fix(1000, 52.1, 21.0))

		assert.ErrorIs(t, err, domain.ErrWatchNotFound)
		assert.Empty(t, log.all())
		assert.Equal(t, 0, w.Watches())
	})

	t.Run("cancel of an unknown watch fails", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())

		assert.ErrorIs(t, w.Cancel("missing"), domain.ErrWatchNotFound)
	})

	t.Run("rejects fixes without latitude", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())

		err := w.Push(ctx, valueobject.FlatSample{})

		assert.ErrorIs(t, err, domain.ErrInvalidSample)
	})

	t.Run("replays a cached fix younger than maximum age", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())
		_ = w.Push(ctx, fix(1000, 52.1, 21.0))

		var fresh, none eventLog
		_, err := w.Watch(ctx, positioning.WatchOptions{MaximumAge: time.Minute}, fresh.sink)
		require.NoError(t, err)
		_, err = w.Watch(ctx, positioning.WatchOptions{}, none.sink)
		require.NoError(t, err)

		assert.Equal(t, []positioning.EventKind{positioning.EventLocation}, fresh.kinds())
		assert.Empty(t, none.all())
	})

	t.Run("reports a timeout once until the next fix", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())
		var log eventLog

		id, err := w.Watch(ctx, positioning.WatchOptions{Timeout: 20 * time.Millisecond}, log.sink)
		require.NoError(t, err)
		defer func() { _ = w.Cancel(id) }()

		require.Eventually(t, func() bool { return len(log.all()) == 1 }, time.Second, 5*time.Millisecond)
		assert.ErrorIs(t, log.all()[0].Err, domain.ErrPositionTimeout)

		time.Sleep(60 * time.Millisecond)
		assert.Len(t, log.all(), 1)

		require.NoError(t, w.Push(ctx, fix(1000, 52.1, 21.0)))
		require.Eventually(t, func() bool { return len(log.all()) == 3 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []positioning.EventKind{
			positioning.EventError,
			positioning.EventLocation,
			positioning.EventError,
		}, log.kinds())
	})

	t.Run("refuses a cancelled context", func(t *testing.T) {
		w := infra.NewPushWatcher(zap.NewNop())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := w.Watch(cancelled, positioning.WatchOptions{}, func(positioning.Event) {})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogWakeLock(t *testing.T) {
	l := infra.NewLogWakeLock(zap.NewNop())

	require.NoError(t, l.Enable())
	require.NoError(t, l.Enable())
	assert.True(t, l.Enabled())

	require.NoError(t, l.Disable())
	require.NoError(t, l.Disable())
	assert.False(t, l.Enabled())
}

func TestLogPrompter(t *testing.T) {
	assert.True(t, infra.NewLogPrompter(true, zap.NewNop()).Confirm(context.Background(), "open settings?"))
	assert.False(t, infra.NewLogPrompter(false, zap.NewNop()).Confirm(context.Background(), "open settings?"))
}
