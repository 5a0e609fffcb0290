package bustime

import "time"

// Vehicle is the live position report of a single bus.
type Vehicle struct {
	ID         string
	LastUpdate time.Time

	Latitude  float64
	Longitude float64
	Heading   int

	PatternID   string
	RouteID     string
	Destination string

	// DistanceIntoRoute is how far along its pattern the vehicle has
	// travelled, in feet.
	DistanceIntoRoute float64

	Delayed bool
}
