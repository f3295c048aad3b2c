package service_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/UnknownOlympus/compass/internal/calculator"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/service"
	"github.com/UnknownOlympus/compass/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationService_Calculate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := t.Context()
	routes := []models.Route{
		{
			Location:   []float64{30, 40},
			Directions: []models.Direction{{Start: models.Float(90), Walk: models.Float(5)}},
		},
		{
			Location: []float64{40, 50},
			Directions: []models.Direction{
				{Start: models.Float(180), Walk: models.Float(10)},
				{Turn: models.Float(90), Walk: models.Float(5)},
			},
		},
	}
	input := models.Input{NumberOfPeople: 2, Routes: routes}

	t.Run("successful calculation", func(t *testing.T) {
		mockCalc := mocks.NewCalculator(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewDestinationService(logger, mockCalc, appMetrics)
		expected := &models.Result{AverageDestination: [2]float64{30, 45}, WorstDestinationDistance: 1.5}

		mockCalc.On("Calculate", 2, routes).Return(expected, nil).Once()

		result, err := svc.Calculate(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, expected, result)
		assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.Calculations.WithLabelValues(metrics.StatusSuccess)), 1e-9)
		assert.InDelta(t, 2.0, testutil.ToFloat64(appMetrics.RoutesProcessed), 1e-9)
		assert.InDelta(t, 3.0, testutil.ToFloat64(appMetrics.DirectionsProcessed), 1e-9)
		assert.InDelta(t, 1.5, testutil.ToFloat64(appMetrics.WorstDistance), 1e-9)
	})

	t.Run("invalid input", func(t *testing.T) {
		mockCalc := mocks.NewCalculator(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewDestinationService(logger, mockCalc, appMetrics)
		calcErr := fmt.Errorf("%w: the number of people must be greater than 0", calculator.ErrInvalidInput)

		mockCalc.On("Calculate", 0, routes).Return(nil, calcErr).Once()

		result, err := svc.Calculate(ctx, models.Input{NumberOfPeople: 0, Routes: routes})

		require.Nil(t, result)
		require.ErrorIs(t, err, calculator.ErrInvalidInput)
		assert.InDelta(t, 1.0,
			testutil.ToFloat64(appMetrics.Calculations.WithLabelValues(metrics.StatusInvalidInput)), 1e-9)
		assert.InDelta(t, 0.0, testutil.ToFloat64(appMetrics.RoutesProcessed), 1e-9)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		mockCalc := mocks.NewCalculator(t)
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewDestinationService(logger, mockCalc, appMetrics)

		mockCalc.On("Calculate", 2, routes).Return(nil, assert.AnError).Once()

		result, err := svc.Calculate(ctx, input)

		require.Nil(t, result)
		require.ErrorIs(t, err, assert.AnError)
		assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.Calculations.WithLabelValues(metrics.StatusFailure)), 1e-9)
	})

	t.Run("with the real calculator", func(t *testing.T) {
		appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewDestinationService(logger, calculator.NewDestinationCalculator(4), appMetrics)

		result, err := svc.Calculate(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, [2]float64{30, 45}, result.AverageDestination)
		assert.Equal(t, 0.0, result.WorstDestinationDistance)
	})
}
