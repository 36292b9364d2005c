package tracking

import (
	"time"

	"github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"
)

const PermissionPrompt = "App requires location tracking permission. Would you like to open app settings?"

type Config struct {
	Watch positioning.WatchOptions
	// ForegroundTier is applied to the background service while the app is
	// visible, BackgroundTier while it is paused.
	ForegroundTier positioning.BackgroundOptions
	BackgroundTier positioning.BackgroundOptions
	QueueSize      int
	Prompt         string
}

func DefaultConfig() Config {
	tier := positioning.BackgroundOptions{
		Interval:            5 * time.Second,
		DesiredAccuracy:     20,
		StationaryRadius:    5,
		DistanceFilter:      5,
		Verbose:             true,
		StopOnTerminate:     true,
		StopOnStillActivity: false,
	}
	background := tier
	background.Verbose = false

	return Config{
		Watch: positioning.WatchOptions{
			HighAccuracy: true,
			Timeout:      10 * time.Second,
			MaximumAge:   5 * time.Second,
		},
		ForegroundTier: tier,
		BackgroundTier: background,
		QueueSize:      256,
		Prompt:         PermissionPrompt,
	}
}
