package valueobject

import "math"

// Unknown marks an optional measurement the source did not report.
const Unknown = -1.0

const precision = 1e5

// Coordinate is the canonical position record. Optional fields hold Unknown
// instead of being absent so consumers never need to check for nil.
type Coordinate struct {
	Time             int64   `json:"time" yaml:"time"`
	Latitude         float64 `json:"latitude" yaml:"latitude"`
	Longitude        float64 `json:"longitude" yaml:"longitude"`
	Accuracy         float64 `json:"accuracy" yaml:"accuracy"`
	Altitude         float64 `json:"altitude" yaml:"altitude"`
	AltitudeAccuracy float64 `json:"altitudeAccuracy" yaml:"altitudeAccuracy"`
	Bearing          float64 `json:"bearing" yaml:"bearing"`
	Heading          float64 `json:"heading" yaml:"heading"`
	Speed            float64 `json:"speed" yaml:"speed"`
}

func EmptyCoordinate() Coordinate {
	return Coordinate{
		Accuracy:         Unknown,
		Altitude:         Unknown,
		AltitudeAccuracy: Unknown,
		Bearing:          Unknown,
		Heading:          Unknown,
	}
}

// Valid reports whether the source actually supplied a latitude.
func (c Coordinate) Valid() bool {
	return c.Latitude != 0 && !math.IsNaN(c.Latitude)
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c == other
}

func round(v float64) float64 {
	return math.Round(v*precision) / precision
}

const earthRadiusMeters = 6371000.0

// DistanceTo returns the great-circle distance in meters.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(a)))
}
