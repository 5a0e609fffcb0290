package bustime

import "time"

type PredictionType string

const (
	PredictionTypeArrival   PredictionType = "A"
	PredictionTypeDeparture PredictionType = "D"
)

// Prediction is a forecast arrival or departure of one vehicle at one stop.
type Prediction struct {
	LastUpdate time.Time
	Type       PredictionType

	StopID   string
	StopName string

	// DistanceToDestination is the remaining distance from the vehicle to
	// the stop, in feet.
	DistanceToDestination int

	VehicleID   string
	RouteID     string
	Direction   string
	Destination string

	PredictionTime time.Time
	Delayed        bool
}
