package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID        uuid.UUID
	Recording bool
	StartedAt int64
	StoppedAt int64
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Recording: true,
		StartedAt: now.UnixMilli(),
	}
}

func (s *Session) Stop(now time.Time) {
	if !s.Recording {
		return
	}
	s.Recording = false
	s.StoppedAt = now.UnixMilli()
}
