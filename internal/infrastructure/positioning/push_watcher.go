package positioning

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/domain"
	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
)

// PushWatcher is a foreground watcher whose fixes are pushed in from outside,
// typically by a browser posting geolocation results.
type PushWatcher struct {
	mu      sync.Mutex
	watches map[positioning.WatchID]*watch
	last    valueobject.RawSample
	lastAt  time.Time
	now     func() time.Time
	logger  *zap.Logger
}

type watch struct {
	opts  positioning.WatchOptions
	sink  positioning.EventSink
	timer *time.Timer
}

func NewPushWatcher(logger *zap.Logger) *PushWatcher {
	return &PushWatcher{
		watches: make(map[positioning.WatchID]*watch),
		now:     time.Now,
		logger:  logger,
	}
}

// Watch registers sink for every pushed fix. A cached fix younger than
// MaximumAge is delivered right away. When no fix arrives within Timeout the
// sink receives one error event until the next fix.
func (p *PushWatcher) Watch(ctx context.Context, opts positioning.WatchOptions, sink positioning.EventSink) (positioning.WatchID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := positioning.WatchID(uuid.NewString())
	w := &watch{opts: opts, sink: sink}

	p.mu.Lock()
	p.watches[id] = w
	cached := p.last
	fresh := cached != nil && opts.MaximumAge > 0 && p.now().Sub(p.lastAt) <= opts.MaximumAge
	p.arm(w)
	p.mu.Unlock()

	p.logger.Debug("position watch registered", zap.String("watch_id", string(id)), zap.Bool("high_accuracy", opts.HighAccuracy))

	if fresh {
		sink(positioning.Event{Kind: positioning.EventLocation, Sample: cached})
	}
	return id, nil
}

func (p *PushWatcher) Cancel(id positioning.WatchID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, ok := p.watches[id]
	if !ok {
		return domain.ErrWatchNotFound
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	delete(p.watches, id)
	return nil
}

// Push delivers sample to every active watch.
func (p *PushWatcher) Push(ctx context.Context, sample valueobject.RawSample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !valueobject.Normalize(sample).Valid() {
		return domain.ErrInvalidSample
	}

	p.mu.Lock()
	p.last = sample
	p.lastAt = p.now()
	sinks := make([]positioning.EventSink, 0, len(p.watches))
	for _, w := range p.watches {
		p.arm(w)
		sinks = append(sinks, w.sink)
	}
	p.mu.Unlock()

	if len(sinks) == 0 {
		return domain.ErrWatchNotFound
	}
	for _, sink := range sinks {
		sink(positioning.Event{Kind: positioning.EventLocation, Sample: sample})
	}
	return nil
}

func (p *PushWatcher) Watches() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.watches)
}

// arm restarts the timeout of w. Callers hold p.mu.
func (p *PushWatcher) arm(w *watch) {
	if w.opts.Timeout <= 0 {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	sink := w.sink
	w.timer = time.AfterFunc(w.opts.Timeout, func() {
		sink(positioning.Event{Kind: positioning.EventError, Err: domain.ErrPositionTimeout})
	})
}
