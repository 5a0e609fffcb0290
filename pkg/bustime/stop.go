package bustime

// Stop is a bus stop served by a route in one direction of travel.
type Stop struct {
	ID   string
	Name string

	Latitude  float64
	Longitude float64
}
