package bustime

// Route is a bus route known to the system.
type Route struct {
	ID   string
	Name string
}
