package response

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/field-tracker/internal/usecase/tracking"
)

type PositionResponse struct {
	Time             int64   `json:"time"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Accuracy         float64 `json:"accuracy"`
	Altitude         float64 `json:"altitude"`
	AltitudeAccuracy float64 `json:"altitude_accuracy"`
	Bearing          float64 `json:"bearing"`
	Heading          float64 `json:"heading"`
	Speed            float64 `json:"speed"`
	Valid            bool    `json:"valid"`
}

type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Recording bool      `json:"recording"`
	StartedAt int64     `json:"started_at"`
	StoppedAt int64     `json:"stopped_at,omitempty"`
}

type StatusResponse struct {
	State       string           `json:"state"`
	Recording   bool             `json:"recording"`
	Session     *SessionResponse `json:"session,omitempty"`
	Position    PositionResponse `json:"position"`
	TrackLength int              `json:"track_length"`
}

type TrackResponse struct {
	Recording bool               `json:"recording"`
	Points    []PositionResponse `json:"points"`
}

type LogsResponse struct {
	Messages []string `json:"messages"`
}

func PositionFromCoordinate(c valueobject.Coordinate) PositionResponse {
	return PositionResponse{
		Time:             c.Time,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		Accuracy:         c.Accuracy,
		Altitude:         c.Altitude,
		AltitudeAccuracy: c.AltitudeAccuracy,
		Bearing:          c.Bearing,
		Heading:          c.Heading,
		Speed:            c.Speed,
		Valid:            c.Valid(),
	}
}

func PositionsFromCoordinates(track []valueobject.Coordinate) []PositionResponse {
	result := make([]PositionResponse, 0, len(track))
	for _, c := range track {
		result = append(result, PositionFromCoordinate(c))
	}
	return result
}

func StatusFromSnapshot(s tracking.Snapshot) StatusResponse {
	resp := StatusResponse{
		State:       s.State.String(),
		Recording:   s.Recording,
		Position:    PositionFromCoordinate(s.Position),
		TrackLength: s.TrackLength,
	}
	if s.HasSession {
		resp.Session = &SessionResponse{
			ID:        s.Session.ID,
			Recording: s.Session.Recording,
			StartedAt: s.Session.StartedAt,
			StoppedAt: s.Session.StoppedAt,
		}
	}
	return resp
}
