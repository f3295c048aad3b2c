package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/compass/internal/calculator"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
)

// Calculator turns the routes of a group of people into a result.
type Calculator interface {
	Calculate(numberOfPeople int, routes []models.Route) (*models.Result, error)
}

// DestinationService runs calculations and records how they went.
type DestinationService struct {
	log        *slog.Logger     // Logger for logging service activities
	calculator Calculator       // Calculator doing the geometry
	metrics    *metrics.Metrics // Metrics for tracking calculations
}

// NewDestinationService creates a new instance of DestinationService.
func NewDestinationService(log *slog.Logger, calc Calculator, metrics *metrics.Metrics) *DestinationService {
	return &DestinationService{
		log:        log,
		calculator: calc,
		metrics:    metrics,
	}
}

// Calculate computes the average destination and the worst destination distance
// of the input. Invalid input is counted separately from other failures.
func (ds *DestinationService) Calculate(ctx context.Context, input models.Input) (*models.Result, error) {
	ds.log.DebugContext(
		ctx,
		"Calculating destinations",
		"people", input.NumberOfPeople,
		"routes", len(input.Routes),
	)

	startTime := time.Now()
	result, err := ds.calculator.Calculate(input.NumberOfPeople, input.Routes)
	ds.metrics.CalculationSeconds.Observe(time.Since(startTime).Seconds())

	if err != nil {
		status := metrics.StatusFailure
		if errors.Is(err, calculator.ErrInvalidInput) {
			status = metrics.StatusInvalidInput
		}
		ds.metrics.Calculations.WithLabelValues(status).Inc()
		ds.log.ErrorContext(ctx, "Failed to calculate destinations", "error", err)

		return nil, err
	}

	directions := 0
	for _, route := range input.Routes {
		directions += len(route.Directions)
	}

	ds.metrics.Calculations.WithLabelValues(metrics.StatusSuccess).Inc()
	ds.metrics.RoutesProcessed.Add(float64(len(input.Routes)))
	ds.metrics.DirectionsProcessed.Add(float64(directions))
	ds.metrics.WorstDistance.Set(result.WorstDestinationDistance)

	ds.log.InfoContext(
		ctx,
		"Destinations calculated",
		"people", input.NumberOfPeople,
		"routes", len(input.Routes),
		"average_destination", result.AverageDestination,
		"worst_destination_distance", result.WorstDestinationDistance,
	)

	return result, nil
}
