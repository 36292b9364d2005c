package logfeed

import (
	"strings"
	"sync"

	"github.com/marcos-nsantos/field-tracker/internal/pkg/observable"
)

const DefaultLimit = 500

// Feed is the user-visible diagnostics log. It keeps the newest limit
// messages and publishes a fresh slice on every append.
type Feed struct {
	mu       sync.Mutex
	limit    int
	messages *observable.Value[[]string]
}

func New(limit int) *Feed {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Feed{
		limit:    limit,
		messages: observable.New([]string{}),
	}
}

func (f *Feed) Append(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	cur := f.messages.Get()
	if len(cur) >= f.limit {
		cur = cur[len(cur)-f.limit+1:]
	}

	next := make([]string, 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, message)
	f.messages.Set(next)
}

func (f *Feed) Messages() []string {
	return f.messages.Get()
}

func (f *Feed) Values() *observable.Value[[]string] {
	return f.messages
}
