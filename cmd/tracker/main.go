package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/handler"
	adapterpos "github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/config"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/positioning"
	"github.com/marcos-nsantos/field-tracker/internal/infrastructure/server"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/logfeed"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/recorder"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	baseLogger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer baseLogger.Sync()

	feed := logfeed.New(cfg.Log.FeedLimit)
	logger, err := observability.WithFeed(baseLogger, feed, cfg.Log.FeedLevel)
	if err != nil {
		baseLogger.Fatal("failed to attach log feed", zap.Error(err))
	}

	// Positioning sources
	watcher := positioning.NewPushWatcher(logger.Named("foreground"))
	deps := tracking.Dependencies{
		Recorder:   recorder.NewRecorder(logger.Named("recorder"), nil),
		Foreground: watcher,
		Prompter:   positioning.NewLogPrompter(cfg.Prompt.DefaultAnswer, logger.Named("prompt")),
		Logger:     logger.Named("tracking"),
	}
	if cfg.Foreground.WakeLock {
		deps.WakeLock = positioning.NewLogWakeLock(logger.Named("wakelock"))
	}
	if cfg.Replay.File != "" {
		samples, err := positioning.LoadReplayFile(cfg.Replay.File)
		if err != nil {
			logger.Fatal("failed to load replay file", zap.String("file", cfg.Replay.File), zap.Error(err))
		}
		deps.Background = positioning.NewReplayService(samples, positioning.ReplayOptions{
			Loop:       cfg.Replay.Loop,
			Authorized: cfg.Replay.Authorized,
		}, logger.Named("background"))
	}

	trackingSvc := tracking.NewService(trackingConfig(cfg), deps)

	// Handlers
	trackingHandler := handler.NewTrackingHandler(trackingSvc, watcher)
	logHandler := handler.NewLogHandler(feed)

	// Router
	router := server.NewRouter(server.RouterConfig{
		TrackingHandler: trackingHandler,
		LogHandler:      logHandler,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := trackingSvc.Run(ctx); err != nil {
			logger.Error("tracking loop error", zap.Error(err))
		}
	}()

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// SIGUSR1 and SIGUSR2 stand in for the app going to background and
	// coming back.
	lifecycle := make(chan os.Signal, 1)
	signal.Notify(lifecycle, syscall.SIGUSR1, syscall.SIGUSR2)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for running := true; running; {
		select {
		case sig := <-lifecycle:
			cmd := tracking.CommandAppResumed
			if sig == syscall.SIGUSR1 {
				cmd = tracking.CommandAppPaused
			}
			if err := trackingSvc.Post(ctx, tracking.CommandEvent(cmd)); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("lifecycle signal dropped", zap.String("command", string(cmd)), zap.Error(err))
			}
		case <-quit:
			running = false
		}
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	cancel()
	<-loopDone

	logger.Info("tracker stopped")
}

func trackingConfig(cfg *config.Config) tracking.Config {
	foreground := adapterpos.BackgroundOptions{
		Interval:            cfg.Background.Interval,
		DesiredAccuracy:     cfg.Background.DesiredAccuracy,
		StationaryRadius:    cfg.Background.StationaryRadius,
		DistanceFilter:      cfg.Background.DistanceFilter,
		Verbose:             true,
		StopOnTerminate:     cfg.Background.StopOnTerminate,
		StopOnStillActivity: cfg.Background.StopOnStillActivity,
	}
	background := foreground
	background.Verbose = false

	return tracking.Config{
		Watch: adapterpos.WatchOptions{
			HighAccuracy: cfg.Foreground.HighAccuracy,
			Timeout:      cfg.Foreground.Timeout,
			MaximumAge:   cfg.Foreground.MaximumAge,
		},
		ForegroundTier: foreground,
		BackgroundTier: background,
		QueueSize:      cfg.Tracking.QueueSize,
		Prompt:         cfg.Prompt.Message,
	}
}
