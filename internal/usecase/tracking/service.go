package tracking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/domain"
	"github.com/marcos-nsantos/field-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/observable"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/recorder"
)

// Service decides which positioning mechanism supplies samples and feeds
// every sample to the recorder. All state changes happen inside Handle, which
// Run calls from a single goroutine. Other goroutines talk to the service
// through Post and Submit and read it through Snapshot.
type Service struct {
	cfg      Config
	recorder *recorder.Recorder
	fg       positioning.ForegroundWatcher
	bg       positioning.BackgroundService
	prompter positioning.SettingsPrompter
	wakeLock positioning.WakeLock
	logger   *zap.Logger

	events  chan envelope
	stopped chan struct{}

	state      *observable.Value[State]
	ready      bool
	bgRunning  bool
	watching   bool
	watchID    positioning.WatchID
	wakeLocked bool
	restarted  map[positioning.Source]bool
}

type Dependencies struct {
	Recorder   *recorder.Recorder
	Foreground positioning.ForegroundWatcher
	Background positioning.BackgroundService
	Prompter   positioning.SettingsPrompter
	WakeLock   positioning.WakeLock
	Logger     *zap.Logger
}

func NewService(cfg Config, deps Dependencies) *Service {
	if cfg.QueueSize < 1 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	if cfg.Prompt == "" {
		cfg.Prompt = PermissionPrompt
	}
	return &Service{
		cfg:       cfg,
		recorder:  deps.Recorder,
		fg:        deps.Foreground,
		bg:        deps.Background,
		prompter:  deps.Prompter,
		wakeLock:  deps.WakeLock,
		logger:    deps.Logger,
		events:    make(chan envelope, cfg.QueueSize),
		stopped:   make(chan struct{}),
		state:     observable.New(StateIdle),
		restarted: make(map[positioning.Source]bool),
	}
}

type Snapshot struct {
	State       State
	Recording   bool
	Session     entity.Session
	HasSession  bool
	Position    valueobject.Coordinate
	TrackLength int
}

func (s *Service) Snapshot() Snapshot {
	session, ok := s.recorder.Session()
	return Snapshot{
		State:       s.state.Get(),
		Recording:   s.recorder.IsRecording(),
		Session:     session,
		HasSession:  ok,
		Position:    s.recorder.CurrentPosition(),
		TrackLength: len(s.recorder.Tracks().Get()),
	}
}

func (s *Service) State() State {
	return s.state.Get()
}

func (s *Service) Track() []valueobject.Coordinate {
	return s.recorder.Track()
}

// WatchPositions streams position updates, starting with the current one.
// The channel is closed by the returned cancel function.
func (s *Service) WatchPositions(buffer int) (<-chan valueobject.Coordinate, func()) {
	return s.recorder.Positions().Channel(buffer)
}

// Run initializes the sources, processes queued events until ctx is done and
// then shuts the sources down.
func (s *Service) Run(ctx context.Context) error {
	s.Init(ctx)

	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			close(s.stopped)
			return nil
		case env := <-s.events:
			s.Handle(ctx, env.event)
			if env.done != nil {
				close(env.done)
			}
		}
	}
}

// Post queues an event for the loop without waiting for it to be handled.
func (s *Service) Post(ctx context.Context, ev Event) error {
	return s.enqueue(ctx, envelope{event: ev})
}

// Submit queues an event and waits until the loop has handled it.
func (s *Service) Submit(ctx context.Context, ev Event) error {
	done := make(chan struct{})
	if err := s.enqueue(ctx, envelope{event: ev, done: done}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-s.stopped:
		return domain.ErrEventLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) enqueue(ctx context.Context, env envelope) error {
	select {
	case <-s.stopped:
		return domain.ErrEventLoopStopped
	default:
	}

	select {
	case s.events <- env:
		return nil
	case <-s.stopped:
		return domain.ErrEventLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sink adapts a source callback to the queue. Sources may call it from
// inside Handle (a watch delivering a cached fix), so it never waits for
// room in the queue: when the queue is full the event is dropped.
func (s *Service) sink(source positioning.Source) positioning.EventSink {
	return func(ev positioning.Event) {
		ev.Source = source
		select {
		case <-s.stopped:
			s.logger.Debug("dropping source event", zap.String("source", string(source)), zap.Error(domain.ErrEventLoopStopped))
		case s.events <- envelope{event: SourceEvent(ev)}:
		default:
			s.logger.Warn("event queue full, dropping source event",
				zap.String("source", string(source)),
				zap.String("kind", string(ev.Kind)),
			)
		}
	}
}

// Init picks the positioning mechanism. The background service is preferred
// when the platform supports it; otherwise the foreground watch is the
// primary source and the display is kept awake. The foreground watch runs in
// both cases so the current position stays fresh before a session starts.
func (s *Service) Init(ctx context.Context) {
	if s.ready {
		return
	}
	s.ready = true

	switch {
	case s.bg != nil && s.bg.Supported():
		s.logger.Info("configuring background service")
		if err := s.bg.Configure(s.cfg.ForegroundTier); err != nil {
			s.logger.Error("configuring background service", zap.Error(err))
		}
		s.bg.Subscribe(s.sink(positioning.SourceBackground))
		s.state.Set(StateBackgroundWatching)
		s.checkPermission(ctx)
		if err := s.startBackground(ctx); err != nil {
			s.logger.Error("background service did not start", zap.Error(err))
		}
	case s.fg != nil:
		s.state.Set(StateForegroundWatching)
		s.enableWakeLock()
	default:
		s.logger.Warn("no positioning source available", zap.Error(domain.ErrSourceUnavailable))
		return
	}

	if err := s.startWatch(ctx); err != nil {
		s.logger.Error("foreground watch did not start", zap.Error(err))
	}
}

// Shutdown releases every source. It is safe to call more than once and
// before Init.
func (s *Service) Shutdown() {
	s.stopWatch()
	if s.state.Get() == StateBackgroundWatching && s.cfg.ForegroundTier.StopOnTerminate {
		s.stopBackground()
	}
	s.disableWakeLock()
	if s.state.Get() != StateIdle {
		s.logger.Info("positioning stopped")
	}
	s.state.Set(StateIdle)
}

// Handle processes one event. It must only be called from the goroutine
// that owns the service.
func (s *Service) Handle(ctx context.Context, ev Event) {
	switch ev.Command {
	case CommandSessionStart:
		s.startSession(ctx)
	case CommandSessionStop:
		s.stopSession()
	case CommandAppPaused:
		s.logger.Info("app paused")
		s.paused()
	case CommandAppResumed:
		s.logger.Info("app resumed")
		s.resumed(ctx)
	case "":
		s.handleSource(ctx, ev.Position)
	default:
		s.logger.Warn("unknown command", zap.String("command", string(ev.Command)))
	}
}

func (s *Service) startSession(ctx context.Context) {
	if !s.recorder.StartSession() {
		return
	}
	clear(s.restarted)

	switch s.state.Get() {
	case StateBackgroundWatching:
		if err := s.startBackground(ctx); err != nil {
			s.logger.Error("background service did not start", zap.Error(err))
		}
	case StateForegroundWatching:
		s.enableWakeLock()
		if err := s.startWatch(ctx); err != nil {
			s.logger.Error("foreground watch did not start", zap.Error(err))
		}
	}
}

func (s *Service) stopSession() {
	s.recorder.StopSession()
	if s.state.Get() == StateBackgroundWatching {
		s.stopBackground()
	}
}

func (s *Service) paused() {
	if s.state.Get() != StateBackgroundWatching {
		return
	}
	if err := s.bg.Configure(s.cfg.BackgroundTier); err != nil {
		s.logger.Error("switching to background tier", zap.Error(err))
	}
}

func (s *Service) resumed(ctx context.Context) {
	switch s.state.Get() {
	case StateBackgroundWatching:
		s.reconcile(ctx)
		if err := s.bg.Configure(s.cfg.ForegroundTier); err != nil {
			s.logger.Error("switching to foreground tier", zap.Error(err))
		}
		if !s.recorder.IsRecording() && !s.bgRunning {
			if err := s.startBackground(ctx); err != nil {
				s.logger.Error("background service did not start", zap.Error(err))
			}
		}
	case StateForegroundWatching:
		if err := s.startWatch(ctx); err != nil {
			s.logger.Error("foreground watch did not start", zap.Error(err))
		}
	}
}

func (s *Service) reconcile(ctx context.Context) {
	samples, err := s.bg.FetchBufferedSamples(ctx)
	if err != nil {
		s.logger.Error("fetching buffered locations", zap.Error(err))
		return
	}
	s.recorder.ReconcileBacklog(samples)
}

func (s *Service) handleSource(ctx context.Context, ev positioning.Event) {
	source := zap.String("source", string(ev.Source))

	switch ev.Kind {
	case positioning.EventLocation, positioning.EventStationary:
		c := valueobject.Normalize(ev.Sample)
		s.logger.Info(string(ev.Kind), source,
			zap.Int64("time", c.Time),
			zap.Float64("latitude", c.Latitude),
			zap.Float64("longitude", c.Longitude),
			zap.Float64("accuracy", c.Accuracy),
		)
		s.recorder.Ingest(c)
	case positioning.EventError:
		s.logger.Error("positioning error", source, zap.Error(ev.Err))
		s.recoverSource(ctx, ev.Source)
	case positioning.EventStart:
		if ev.Source == positioning.SourceBackground {
			s.bgRunning = true
		}
		s.logger.Info("positioning service started", source)
	case positioning.EventStop:
		if ev.Source == positioning.SourceBackground {
			s.bgRunning = false
		}
		s.logger.Info("positioning service stopped", source)
	case positioning.EventAuthorization:
		s.logger.Info("authorization changed", source, zap.Bool("authorized", ev.Authorized))
		if !ev.Authorized {
			s.promptSettings(ctx)
		}
	case positioning.EventForeground:
		s.logger.Info("app is in foreground", source)
		s.resumed(ctx)
	case positioning.EventBackground:
		s.logger.Info("app is in background", source)
		s.paused()
	default:
		s.logger.Warn("unknown positioning event", source, zap.String("kind", string(ev.Kind)))
	}
}

// recoverSource restarts a failed source once per session. Errors outside a
// session are left alone until the next session starts.
func (s *Service) recoverSource(ctx context.Context, source positioning.Source) {
	if !s.recorder.IsRecording() || s.restarted[source] {
		return
	}
	s.restarted[source] = true

	var err error
	switch source {
	case positioning.SourceBackground:
		err = s.restartBackground(ctx)
	case positioning.SourceForeground:
		s.stopWatch()
		err = s.startWatch(ctx)
	default:
		return
	}
	if err != nil {
		s.logger.Error("restart failed", zap.String("source", string(source)), zap.Error(err))
		return
	}
	s.logger.Info("source restarted", zap.String("source", string(source)))
}

func (s *Service) restartBackground(ctx context.Context) error {
	if s.bg == nil || s.state.Get() != StateBackgroundWatching {
		return domain.ErrSourceUnavailable
	}
	if err := s.bg.Stop(); err != nil {
		s.logger.Warn("stopping background service", zap.Error(err))
	}
	s.bgRunning = false
	if err := s.bg.Start(ctx); err != nil {
		return fmt.Errorf("starting background service: %w", err)
	}
	s.bgRunning = true
	return nil
}

func (s *Service) startBackground(ctx context.Context) error {
	if s.bgRunning {
		return nil
	}

	status, err := s.bg.Status(ctx)
	if err != nil {
		s.logger.Warn("checking background service status", zap.Error(err))
	} else {
		s.logger.Info("background service status",
			zap.Bool("running", status.Running),
			zap.Bool("services_enabled", status.ServicesEnabled),
			zap.String("authorization", status.AuthorizationStatus),
		)
		if status.Running {
			s.bgRunning = true
			return nil
		}
	}

	if err := s.bg.Start(ctx); err != nil {
		return fmt.Errorf("starting background service: %w", err)
	}
	s.bgRunning = true
	return nil
}

func (s *Service) stopBackground() {
	if err := s.bg.Stop(); err != nil {
		s.logger.Warn("stopping background service", zap.Error(err))
	}
	s.bgRunning = false
}

func (s *Service) startWatch(ctx context.Context) error {
	if s.fg == nil || s.watching {
		return nil
	}

	id, err := s.fg.Watch(ctx, s.cfg.Watch, s.sink(positioning.SourceForeground))
	if err != nil {
		return fmt.Errorf("watching position: %w", err)
	}
	s.watchID = id
	s.watching = true
	return nil
}

func (s *Service) stopWatch() {
	if !s.watching {
		return
	}
	s.watching = false
	if err := s.fg.Cancel(s.watchID); err != nil {
		s.logger.Warn("cancelling position watch", zap.Error(err))
	}
}

func (s *Service) checkPermission(ctx context.Context) {
	granted, err := s.bg.PermissionGranted(ctx)
	if err != nil {
		s.logger.Warn("checking location permission", zap.Error(err))
		return
	}
	if !granted {
		s.logger.Warn("location permission not granted", zap.Error(domain.ErrPermissionDenied))
		s.promptSettings(ctx)
	}
}

func (s *Service) promptSettings(ctx context.Context) {
	if s.prompter == nil || s.bg == nil {
		return
	}
	if !s.prompter.Confirm(ctx, s.cfg.Prompt) {
		return
	}
	if err := s.bg.ShowAppSettings(); err != nil {
		s.logger.Error("opening app settings", zap.Error(err))
	}
}

func (s *Service) enableWakeLock() {
	if s.wakeLock == nil || s.wakeLocked {
		return
	}
	if err := s.wakeLock.Enable(); err != nil {
		s.logger.Warn("enabling wake lock", zap.Error(err))
		return
	}
	s.wakeLocked = true
}

func (s *Service) disableWakeLock() {
	if s.wakeLock == nil || !s.wakeLocked {
		return
	}
	s.wakeLocked = false
	if err := s.wakeLock.Disable(); err != nil {
		s.logger.Warn("disabling wake lock", zap.Error(err))
	}
}
