package bustime

type PointType string

const (
	PointTypeStop     PointType = "S"
	PointTypeWaypoint PointType = "W"
)

// Pattern is the geometry a route variant follows, as an ordered set of
// points.
type Pattern struct {
	ID string

	// Length is the total length of the pattern in feet.
	Length int

	RouteDirection string

	// Path is keyed by point sequence number. Walking the keys in
	// ascending order traces the pattern from start to end.
	Path map[int]*PathPoint
}

// PathPoint is a single point on a pattern, either a stop or a plain
// shape waypoint.
type PathPoint struct {
	Sequence int
	Type     PointType

	Latitude  float64
	Longitude float64

	// StopID and StopName are set only when Type is PointTypeStop.
	StopID   *string
	StopName *string
}
