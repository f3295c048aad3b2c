package models

import "math"

// Point represents a position on the plane.
type Point struct {
	X float64 // X grows to the east.
	Y float64 // Y grows to the north.
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(math.Pow(p.X-other.X, 2) + math.Pow(p.Y-other.Y, 2))
}
