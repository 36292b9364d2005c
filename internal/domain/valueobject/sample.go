package valueobject

// RawSample is a position fix as delivered by a positioning mechanism. It is
// either a NestedSample or a FlatSample.
type RawSample interface {
	rawSample()
}

// NestedSample is the shape produced by the continuous foreground watch.
type NestedSample struct {
	Timestamp int64        `json:"timestamp" yaml:"timestamp"`
	Coords    NestedCoords `json:"coords" yaml:"coords"`
}

type NestedCoords struct {
	Latitude         float64  `json:"latitude" yaml:"latitude"`
	Longitude        float64  `json:"longitude" yaml:"longitude"`
	Accuracy         *float64 `json:"accuracy" yaml:"accuracy"`
	Altitude         *float64 `json:"altitude" yaml:"altitude"`
	AltitudeAccuracy *float64 `json:"altitudeAccuracy" yaml:"altitudeAccuracy"`
	Heading          *float64 `json:"heading" yaml:"heading"`
	Speed            *float64 `json:"speed" yaml:"speed"`
}

// FlatSample is the shape produced by the background service. Fields it does
// not report stay nil.
type FlatSample struct {
	Time             *int64   `json:"time" yaml:"time"`
	Latitude         *float64 `json:"latitude" yaml:"latitude"`
	Longitude        *float64 `json:"longitude" yaml:"longitude"`
	Accuracy         *float64 `json:"accuracy" yaml:"accuracy"`
	Altitude         *float64 `json:"altitude" yaml:"altitude"`
	AltitudeAccuracy *float64 `json:"altitudeAccuracy" yaml:"altitudeAccuracy"`
	Bearing          *float64 `json:"bearing" yaml:"bearing"`
	Heading          *float64 `json:"heading" yaml:"heading"`
	Speed            *float64 `json:"speed" yaml:"speed"`
}

func (NestedSample) rawSample() {}
func (FlatSample) rawSample()   {}
