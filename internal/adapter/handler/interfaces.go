package handler

import (
	"context"

	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type TrackingService interface {
	Snapshot() tracking.Snapshot
	Track() []valueobject.Coordinate
	WatchPositions(buffer int) (<-chan valueobject.Coordinate, func())
	Submit(ctx context.Context, ev tracking.Event) error
}

type SamplePusher interface {
	Push(ctx context.Context, sample valueobject.RawSample) error
}

type LogFeed interface {
	Messages() []string
}
