package request

import "github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"

// SampleRequest accepts both sample shapes. A body with a coords object is
// treated as a geolocation watch fix, anything else as a flat record.
type SampleRequest struct {
	Timestamp *int64         `json:"timestamp" binding:"omitempty,min=0"`
	Coords    *CoordsRequest `json:"coords"`

	Time             *int64   `json:"time" binding:"omitempty,min=0"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Accuracy         *float64 `json:"accuracy" binding:"omitempty,min=0"`
	Altitude         *float64 `json:"altitude"`
	AltitudeAccuracy *float64 `json:"altitudeAccuracy"`
	Bearing          *float64 `json:"bearing"`
	Heading          *float64 `json:"heading"`
	Speed            *float64 `json:"speed"`
}

type CoordsRequest struct {
	Latitude         float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude        float64  `json:"longitude" binding:"min=-180,max=180"`
	Accuracy         *float64 `json:"accuracy" binding:"omitempty,min=0"`
	Altitude         *float64 `json:"altitude"`
	AltitudeAccuracy *float64 `json:"altitudeAccuracy"`
	Heading          *float64 `json:"heading"`
	Speed            *float64 `json:"speed"`
}

func (r SampleRequest) ToSample() valueobject.RawSample {
	if r.Coords != nil {
		var ts int64
		if r.Timestamp != nil {
			ts = *r.Timestamp
		}
		return valueobject.NestedSample{
			Timestamp: ts,
			Coords: valueobject.NestedCoords{
				Latitude:         r.Coords.Latitude,
				Longitude:        r.Coords.Longitude,
				Accuracy:         r.Coords.Accuracy,
				Altitude:         r.Coords.Altitude,
				AltitudeAccuracy: r.Coords.AltitudeAccuracy,
				Heading:          r.Coords.Heading,
				Speed:            r.Coords.Speed,
			},
		}
	}

	return valueobject.FlatSample{
		Time:             r.Time,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Accuracy:         r.Accuracy,
		Altitude:         r.Altitude,
		AltitudeAccuracy: r.AltitudeAccuracy,
		Bearing:          r.Bearing,
		Heading:          r.Heading,
		Speed:            r.Speed,
	}
}

type LogsRequest struct {
	Tail int `form:"tail" binding:"omitempty,min=1"`
}
