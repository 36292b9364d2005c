package positioning

import "github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"

// Source names the mechanism an event came from.
type Source string

const (
	SourceForeground Source = "foreground"
	SourceBackground Source = "background"
)

type EventKind string

const (
	EventLocation      EventKind = "location"
	EventStationary    EventKind = "stationary"
	EventError         EventKind = "error"
	EventStart         EventKind = "start"
	EventStop          EventKind = "stop"
	EventAuthorization EventKind = "authorization"
	EventForeground    EventKind = "foreground"
	EventBackground    EventKind = "background"
)

// Event is a notification raised by a positioning mechanism.
type Event struct {
	Source     Source
	Kind       EventKind
	Sample     valueobject.RawSample
	Err        error
	Authorized bool
}

// EventSink receives events from a positioning mechanism. Implementations
// must not block for long; the tracking service queues events for its loop.
type EventSink func(Event)
