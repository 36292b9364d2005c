package positioning

import (
	"context"
	"time"

	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/positioning_mocks.go -package=mocks

type ForegroundWatcher interface {
	Watch(ctx context.Context, opts WatchOptions, sink EventSink) (WatchID, error)
	Cancel(id WatchID) error
}

type BackgroundService interface {
	Supported() bool
	Configure(opts BackgroundOptions) error
	Subscribe(sink EventSink)
	Start(ctx context.Context) error
	Stop() error
	Status(ctx context.Context) (Status, error)
	FetchBufferedSamples(ctx context.Context) ([]valueobject.RawSample, error)
	PermissionGranted(ctx context.Context) (bool, error)
	ShowAppSettings() error
}

type SettingsPrompter interface {
	Confirm(ctx context.Context, message string) bool
}

type WakeLock interface {
	Enable() error
	Disable() error
}

type WatchID string

type WatchOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

type BackgroundOptions struct {
	Interval            time.Duration
	DesiredAccuracy     int
	StationaryRadius    int
	DistanceFilter      int
	Verbose             bool
	StopOnTerminate     bool
	StopOnStillActivity bool
}

type Status struct {
	Running             bool
	ServicesEnabled     bool
	AuthorizationStatus string
}
