package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/UnknownOlympus/compass/internal/models"
)

// worstDistanceScale is the number of decimals kept for the worst destination distance.
const worstDistanceScale = 5

// significantDigits is the precision a float64 reliably holds in decimal.
const significantDigits = 15

// ErrInvalidInput is returned when the people count or a route is malformed.
var ErrInvalidInput = errors.New("invalid input")

// DestinationCalculator computes the average destination of several routes
// and how far the most distant destination lies from it.
type DestinationCalculator struct {
	scale int // Decimals kept for the average destination coordinates.
}

// NewDestinationCalculator creates a calculator that rounds the average
// destination to scale decimal places.
func NewDestinationCalculator(scale int) *DestinationCalculator {
	return &DestinationCalculator{scale: scale}
}

// Calculate walks every route to its destination, averages the destinations
// over numberOfPeople and measures the worst distance to that average.
// The first malformed field aborts the calculation with ErrInvalidInput.
func (c *DestinationCalculator) Calculate(numberOfPeople int, routes []models.Route) (*models.Result, error) {
	if numberOfPeople <= 0 {
		return nil, fmt.Errorf("%w: the number of people must be greater than 0", ErrInvalidInput)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: the number of routes must be at least 1", ErrInvalidInput)
	}

	destinations := make([]models.Point, 0, len(routes))
	for idx, route := range routes {
		destination, err := Destination(route)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", idx+1, err)
		}
		destinations = append(destinations, destination)
	}

	average := averageDestination(numberOfPeople, destinations)

	return &models.Result{
		AverageDestination: [2]float64{
			round(average.X, c.scale),
			round(average.Y, c.scale),
		},
		WorstDestinationDistance: round(worstDistance(average, destinations), worstDistanceScale),
	}, nil
}

// Destination returns the point reached after walking every direction of route.
func Destination(route models.Route) (models.Point, error) {
	if len(route.Directions) == 0 {
		return models.Point{}, fmt.Errorf("%w: each route must contain a non-empty list of directions", ErrInvalidInput)
	}

	position, err := location(route)
	if err != nil {
		return models.Point{}, err
	}

	previousAngle := 0.0
	for idx, direction := range route.Directions {
		if !isNumeric(direction.Walk) {
			return models.Point{}, fmt.Errorf(
				"direction %d: %w: each direction must contain a numeric 'walk' element, "+
					"which is a number of units to walk", idx+1, ErrInvalidInput,
			)
		}

		turn, err := directionAngle(direction, idx == 0)
		if err != nil {
			return models.Point{}, fmt.Errorf("direction %d: %w", idx+1, err)
		}

		// The running heading keeps the raw sum, only the applied heading is normalized.
		angle := previousAngle + turn
		previousAngle = angle
		radians := normalizeAngle(angle) * math.Pi / 180

		position.X += *direction.Walk * math.Cos(radians)
		position.Y += *direction.Walk * math.Sin(radians)
	}

	return position, nil
}

func location(route models.Route) (models.Point, error) {
	if len(route.Location) != 2 {
		return models.Point{}, fmt.Errorf(
			"%w: each route must contain a 'location' with 2 elements: x and y coordinates", ErrInvalidInput,
		)
	}

	x, y := route.Location[0], route.Location[1]
	if !isFinite(x) || !isFinite(y) {
		return models.Point{}, fmt.Errorf("%w: the coordinates must be numeric values", ErrInvalidInput)
	}

	return models.Point{X: x, Y: y}, nil
}

// directionAngle picks 'start' for the first direction and 'turn' for the rest.
func directionAngle(direction models.Direction, isFirst bool) (float64, error) {
	if isFirst {
		if !isNumeric(direction.Start) {
			return 0, fmt.Errorf(
				"%w: the first direction must contain a numeric 'start' element, "+
					"which is an angle of the initial direction in degrees", ErrInvalidInput,
			)
		}
		if direction.Turn != nil {
			return 0, fmt.Errorf("%w: the first direction must not contain a 'turn' element", ErrInvalidInput)
		}
		return *direction.Start, nil
	}

	if !isNumeric(direction.Turn) {
		return 0, fmt.Errorf(
			"%w: the second and subsequent directions must contain a numeric 'turn' element, "+
				"which is an angle of turn in degrees", ErrInvalidInput,
		)
	}

	if direction.Start != nil {
		return 0, fmt.Errorf("%w: only the first direction may contain a 'start' element", ErrInvalidInput)
	}

	return *direction.Turn, nil
}

// normalizeAngle lifts a negative heading by a single turn only.
// Headings below -360 stay negative, which sine and cosine do not mind.
func normalizeAngle(angle float64) float64 {
	if angle < 0 {
		return 360 + angle
	}
	return angle
}

// averageDestination divides by the declared number of people, so missing routes count as zero.
func averageDestination(numberOfPeople int, destinations []models.Point) models.Point {
	var sum models.Point
	for _, destination := range destinations {
		sum.X += destination.X
		sum.Y += destination.Y
	}

	return models.Point{
		X: sum.X / float64(numberOfPeople),
		Y: sum.Y / float64(numberOfPeople),
	}
}

func worstDistance(average models.Point, destinations []models.Point) float64 {
	worst := 0.0
	for _, destination := range destinations {
		if distance := average.DistanceTo(destination); distance > worst {
			worst = distance
		}
	}
	return worst
}

// round rounds half away from zero to the given number of decimals. The scaled
// value is first cut to 15 significant digits so that decimal halves such as
// 1.005 are not lost to their binary representation.
func round(value float64, scale int) float64 {
	factor := math.Pow(10, float64(scale))
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(value*factor, 'g', significantDigits, 64), 64)
	if err != nil {
		scaled = value * factor
	}
	return math.Round(scaled) / factor
}

func isNumeric(value *float64) bool {
	return value != nil && isFinite(*value)
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
