package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Foreground ForegroundConfig
	Background BackgroundConfig
	Tracking   TrackingConfig
	Replay     ReplayConfig
	Prompt     PromptConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"0s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development production"`
}

type LogConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format    string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	FeedLevel string `envconfig:"LOG_FEED_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	FeedLimit int    `envconfig:"LOG_FEED_LIMIT" default:"500" validate:"min=1"`
}

type ForegroundConfig struct {
	HighAccuracy bool          `envconfig:"FOREGROUND_HIGH_ACCURACY" default:"true"`
	Timeout      time.Duration `envconfig:"FOREGROUND_TIMEOUT" default:"10s" validate:"gt=0"`
	MaximumAge   time.Duration `envconfig:"FOREGROUND_MAXIMUM_AGE" default:"5s" validate:"gte=0"`
	WakeLock     bool          `envconfig:"FOREGROUND_WAKE_LOCK" default:"true"`
}

type BackgroundConfig struct {
	Interval            time.Duration `envconfig:"BACKGROUND_INTERVAL" default:"5s" validate:"gt=0"`
	DesiredAccuracy     int           `envconfig:"BACKGROUND_DESIRED_ACCURACY" default:"20" validate:"min=0"`
	StationaryRadius    int           `envconfig:"BACKGROUND_STATIONARY_RADIUS" default:"5" validate:"min=0"`
	DistanceFilter      int           `envconfig:"BACKGROUND_DISTANCE_FILTER" default:"5" validate:"min=0"`
	StopOnTerminate     bool          `envconfig:"BACKGROUND_STOP_ON_TERMINATE" default:"true"`
	StopOnStillActivity bool          `envconfig:"BACKGROUND_STOP_ON_STILL_ACTIVITY" default:"false"`
}

type TrackingConfig struct {
	QueueSize int `envconfig:"TRACKING_QUEUE_SIZE" default:"256" validate:"min=1"`
}

// ReplayConfig points at a YAML file of recorded samples. Without a file the
// background service reports itself as unsupported.
type ReplayConfig struct {
	File       string `envconfig:"REPLAY_FILE"`
	Loop       bool   `envconfig:"REPLAY_LOOP" default:"false"`
	Authorized bool   `envconfig:"REPLAY_AUTHORIZED" default:"true"`
}

type PromptConfig struct {
	Message       string `envconfig:"PROMPT_MESSAGE"`
	DefaultAnswer bool   `envconfig:"PROMPT_DEFAULT_ANSWER" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
