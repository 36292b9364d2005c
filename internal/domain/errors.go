package domain

import "errors"

var (
	ErrSourceUnavailable = errors.New("positioning source unavailable")
	ErrPermissionDenied  = errors.New("location permission denied")
	ErrWatchNotFound     = errors.New("watch not found")
	ErrNoReplayData      = errors.New("replay file has no samples")
	ErrEventLoopStopped  = errors.New("event loop stopped")
	ErrInvalidSample     = errors.New("invalid position sample")
	ErrPositionTimeout   = errors.New("no position within timeout")
)
