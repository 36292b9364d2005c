package positioning

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/domain"
	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
)

type replayFile struct {
	Samples []valueobject.FlatSample `yaml:"samples"`
}

// LoadReplayFile reads a YAML document with a top-level samples list of flat
// records.
func LoadReplayFile(path string) ([]valueobject.FlatSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay file: %w", err)
	}
	return ParseReplay(data)
}

func ParseReplay(data []byte) ([]valueobject.FlatSample, error) {
	var f replayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding replay file: %w", err)
	}
	if len(f.Samples) == 0 {
		return nil, domain.ErrNoReplayData
	}
	return f.Samples, nil
}

type ReplayOptions struct {
	Loop       bool
	Authorized bool
}

// ReplayService plays recorded samples back as a background positioning
// service, one sample per configured interval. In the non-verbose tier
// samples are buffered until FetchBufferedSamples drains them, which is how
// the real service behaves while the app is in the background.
type ReplayService struct {
	transition sync.Mutex
	mu         sync.Mutex
	samples    []valueobject.FlatSample
	loop       bool
	authorized bool
	opts       positioning.BackgroundOptions
	sinks      []positioning.EventSink
	running    bool
	cancel     context.CancelFunc
	reset      chan struct{}
	next       int
	buffer     []valueobject.RawSample
	anchor     *valueobject.Coordinate
	stationary bool
	logger     *zap.Logger
}

func NewReplayService(samples []valueobject.FlatSample, opts ReplayOptions, logger *zap.Logger) *ReplayService {
	return &ReplayService{
		samples:    samples,
		loop:       opts.Loop,
		authorized: opts.Authorized,
		reset:      make(chan struct{}, 1),
		logger:     logger,
	}
}

func (r *ReplayService) Supported() bool {
	return len(r.samples) > 0
}

func (r *ReplayService) Configure(opts positioning.BackgroundOptions) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("configuring replay: interval must be positive, got %s", opts.Interval)
	}

	r.mu.Lock()
	r.opts = opts
	r.mu.Unlock()

	select {
	case r.reset <- struct{}{}:
	default:
	}

	r.logger.Info("replay configured",
		zap.Duration("interval", opts.Interval),
		zap.Bool("verbose", opts.Verbose),
		zap.Int("stationary_radius", opts.StationaryRadius),
		zap.Int("distance_filter", opts.DistanceFilter),
	)
	return nil
}

func (r *ReplayService) Subscribe(sink positioning.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
}

// Start begins playback on its own goroutine. Start and stop events are
// emitted while the transition lock is held, so they reach subscribers in
// the order the transitions happened.
func (r *ReplayService) Start(ctx context.Context) error {
	r.transition.Lock()
	defer r.transition.Unlock()

	started, err := r.start(ctx)
	if err != nil || !started {
		return err
	}
	r.emit(positioning.Event{Kind: positioning.EventStart})
	return nil
}

func (r *ReplayService) start(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.samples) == 0 {
		return false, domain.ErrNoReplayData
	}
	if !r.authorized {
		return false, domain.ErrPermissionDenied
	}
	if r.running {
		return false, nil
	}
	if r.opts.Interval <= 0 {
		return false, fmt.Errorf("starting replay: %w", domain.ErrSourceUnavailable)
	}
	if r.next >= len(r.samples) {
		r.next = 0
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.running = true
	go r.run(loopCtx, r.opts.Interval)
	return true, nil
}

func (r *ReplayService) Stop() error {
	r.transition.Lock()
	defer r.transition.Unlock()

	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	r.cancel()
	r.mu.Unlock()

	r.emit(positioning.Event{Kind: positioning.EventStop})
	return nil
}

func (r *ReplayService) Status(ctx context.Context) (positioning.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auth := "denied"
	if r.authorized {
		auth = "authorized"
	}
	return positioning.Status{
		Running:             r.running,
		ServicesEnabled:     len(r.samples) > 0,
		AuthorizationStatus: auth,
	}, nil
}

func (r *ReplayService) FetchBufferedSamples(ctx context.Context) ([]valueobject.RawSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buffered := r.buffer
	r.buffer = nil
	return buffered, nil
}

func (r *ReplayService) PermissionGranted(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authorized, nil
}

// ShowAppSettings stands in for the platform settings screen and grants the
// permission.
func (r *ReplayService) ShowAppSettings() error {
	r.mu.Lock()
	r.authorized = true
	r.mu.Unlock()

	r.logger.Info("location settings opened, permission granted")
	return nil
}

func (r *ReplayService) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.reset:
			r.mu.Lock()
			interval = r.opts.Interval
			r.mu.Unlock()
			ticker.Reset(interval)
		case <-ticker.C:
			if !r.tick(ctx) {
				return
			}
		}
	}
}

// tick plays the next sample and reports whether playback continues.
func (r *ReplayService) tick(ctx context.Context) bool {
	r.transition.Lock()
	defer r.transition.Unlock()

	r.mu.Lock()
	if ctx.Err() != nil || !r.running {
		r.mu.Unlock()
		return false
	}
	if r.next >= len(r.samples) {
		if !r.loop {
			r.running = false
			r.cancel()
			r.mu.Unlock()
			r.logger.Info("replay finished")
			r.emit(positioning.Event{Kind: positioning.EventStop})
			return false
		}
		r.next = 0
	}

	sample := r.samples[r.next]
	r.next++

	kind, deliver := r.classify(valueobject.Normalize(sample))
	if !deliver {
		r.mu.Unlock()
		return true
	}

	stop := kind == positioning.EventStationary && r.opts.StopOnStillActivity
	if stop {
		r.running = false
		r.cancel()
	}

	if r.opts.Verbose {
		r.mu.Unlock()
		r.emit(positioning.Event{Kind: kind, Sample: sample})
	} else {
		r.buffer = append(r.buffer, sample)
		buffered := len(r.buffer)
		r.mu.Unlock()
		r.logger.Debug("replay sample buffered", zap.Int("buffered", buffered))
	}

	if stop {
		r.emit(positioning.Event{Kind: positioning.EventStop})
		return false
	}
	return true
}

// classify applies the stationary radius and distance filter against the
// last delivered position. Callers hold r.mu.
func (r *ReplayService) classify(c valueobject.Coordinate) (positioning.EventKind, bool) {
	if r.anchor == nil {
		r.anchor = &c
		return positioning.EventLocation, true
	}

	moved := r.anchor.DistanceTo(c)
	switch {
	case moved < float64(r.opts.StationaryRadius):
		if r.stationary {
			return "", false
		}
		r.stationary = true
		return positioning.EventStationary, true
	case moved < float64(r.opts.DistanceFilter):
		return "", false
	}

	r.stationary = false
	r.anchor = &c
	return positioning.EventLocation, true
}

func (r *ReplayService) emit(ev positioning.Event) {
	r.mu.Lock()
	sinks := append([]positioning.EventSink(nil), r.sinks...)
	r.mu.Unlock()

	for _, sink := range sinks {
		sink(ev)
	}
}
