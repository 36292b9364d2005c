package valueobject

// Normalize converts a raw sample of either shape into a Coordinate. It never
// fails: fields missing from the sample keep the Coordinate defaults.
func Normalize(sample RawSample) Coordinate {
	c := EmptyCoordinate()

	switch s := sample.(type) {
	case NestedSample:
		normalizeNested(&c, s)
	case *NestedSample:
		if s != nil {
			normalizeNested(&c, *s)
		}
	case FlatSample:
		normalizeFlat(&c, s)
	case *FlatSample:
		if s != nil {
			normalizeFlat(&c, *s)
		}
	}

	return c
}

func normalizeNested(c *Coordinate, s NestedSample) {
	c.Time = s.Timestamp
	c.Latitude = round(s.Coords.Latitude)
	c.Longitude = round(s.Coords.Longitude)
	if s.Coords.Altitude != nil {
		c.Altitude = round(*s.Coords.Altitude)
	}
	copyFloat(&c.Accuracy, s.Coords.Accuracy)
	copyFloat(&c.AltitudeAccuracy, s.Coords.AltitudeAccuracy)
	copyFloat(&c.Heading, s.Coords.Heading)
	copyFloat(&c.Speed, s.Coords.Speed)
}

func normalizeFlat(c *Coordinate, s FlatSample) {
	if s.Time != nil {
		c.Time = *s.Time
	}
	copyFloat(&c.Latitude, s.Latitude)
	copyFloat(&c.Longitude, s.Longitude)
	copyFloat(&c.Accuracy, s.Accuracy)
	copyFloat(&c.Altitude, s.Altitude)
	copyFloat(&c.AltitudeAccuracy, s.AltitudeAccuracy)
	copyFloat(&c.Bearing, s.Bearing)
	copyFloat(&c.Heading, s.Heading)
	copyFloat(&c.Speed, s.Speed)
}

func copyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
