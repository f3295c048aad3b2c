package models

// Direction is one leg of a walk. The first leg of a route carries Start,
// every following leg carries Turn. Nil fields are absent.
type Direction struct {
	Start *float64 `json:"start,omitempty"` // Start is the initial heading in degrees (east is 0, north is 90).
	Turn  *float64 `json:"turn,omitempty"`  // Turn is the heading change in degrees, positive turns left.
	Walk  *float64 `json:"walk,omitempty"`  // Walk is the distance to cover in planar units.
}

// Route is the walk recorded for one person.
type Route struct {
	Location   []float64   `json:"location"`   // Location is the X/Y point where the person was met.
	Directions []Direction `json:"directions"` // Directions are the legs in the order they were given.
}

// Input is everything needed for one calculation.
type Input struct {
	NumberOfPeople int     `json:"number_of_people"`
	Routes         []Route `json:"routes"`
}

// Float returns a pointer to v. It keeps literal directions short.
func Float(v float64) *float64 {
	return &v
}
