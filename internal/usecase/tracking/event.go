package tracking

import "github.com/marcos-nsantos/field-tracker/internal/adapter/positioning"

type Command string

const (
	CommandSessionStart Command = "session_start"
	CommandSessionStop  Command = "session_stop"
	CommandAppPaused    Command = "app_paused"
	CommandAppResumed   Command = "app_resumed"
)

// Event is one unit of work for the tracking loop: either a command from the
// user or lifecycle, or a notification from a positioning mechanism.
type Event struct {
	Command  Command
	Position positioning.Event
}

func CommandEvent(cmd Command) Event {
	return Event{Command: cmd}
}

func SourceEvent(ev positioning.Event) Event {
	return Event{Position: ev}
}

type envelope struct {
	event Event
	done  chan struct{}
}
