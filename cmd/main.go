package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/compass/internal/calculator"
	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/prompt"
	"github.com/UnknownOlympus/compass/internal/routefile"
	"github.com/UnknownOlympus/compass/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// Exit codes.
const (
	exitOK           = 0
	exitInvalidInput = 1
	exitFailure      = 2
)

// main is the entry point of the application.
func main() {
	// Cancel the pending questions on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad(os.Args[1:])
	logger := setupLogger(cfg.Env)

	code := run(ctx, cfg, logger, os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// run performs one calculation and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) int {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	defer writeMetrics(ctx, logger, reg, cfg.MetricsFile)

	input, err := readInput(ctx, cfg, in, out)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read the routes", "error", err)
		reportError(ctx, logger, out, err)
		return exitFailure
	}

	destinationService := service.NewDestinationService(
		logger,
		calculator.NewDestinationCalculator(cfg.Scale),
		appMetrics,
	)

	result, err := destinationService.Calculate(ctx, input)
	if err != nil {
		reportError(ctx, logger, out, err)
		if errors.Is(err, calculator.ErrInvalidInput) {
			return exitInvalidInput
		}
		return exitFailure
	}

	if err = prompt.Render(out, *result); err != nil {
		logger.ErrorContext(ctx, "Failed to print the result", "error", err)
		return exitFailure
	}

	return exitOK
}

// reportError shows err to the person at the prompt.
func reportError(ctx context.Context, log *slog.Logger, out io.Writer, err error) {
	if _, writeErr := fmt.Fprintf(out, "Error: %v\n", err); writeErr != nil {
		log.ErrorContext(ctx, "Failed to print the error", "error", writeErr)
	}
}

// readInput takes the routes from the configured file, or asks for them.
func readInput(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (models.Input, error) {
	if cfg.RoutesFile != "" {
		return routefile.Load(cfg.RoutesFile)
	}

	return prompt.NewSession(in, out, cfg.QuitWord).Collect(ctx)
}

// writeMetrics dumps the registry for the node_exporter textfile collector.
func writeMetrics(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, path string) {
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		log.ErrorContext(ctx, "Failed to write metrics", "path", path, "error", err)
		return
	}
	log.DebugContext(ctx, "Metrics written", "path", path)
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr, stdout belongs to the dialogue.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
