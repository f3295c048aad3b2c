package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// maxScale is the largest number of decimals a float64 can still carry meaningfully.
const maxScale = 15

const defaultScale = 4

// Config holds the configuration settings for the destination calculator.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Scale: Decimal places kept for the average destination.
// - RoutesFile: JSON file with the routes; empty means the routes are asked interactively.
// - MetricsFile: Path of the Prometheus textfile written after a run; empty disables it.
// - QuitWord: The answer that ends a list of directions or people.
type Config struct {
	Env         string `mapstructure:"env"`          // Env is the current environment: local, development, production.
	Scale       int    `mapstructure:"scale"`        // Scale of the average destination coordinates.
	RoutesFile  string `mapstructure:"routes-file"`  // RoutesFile is the optional JSON input.
	MetricsFile string `mapstructure:"metrics-file"` // MetricsFile is the optional metrics output.
	QuitWord    string `mapstructure:"quit-word"`    // QuitWord ends the interactive lists.
}

// MustLoad builds the configuration from command line args, COMPASS_* environment
// variables, an optional .env file and an optional config file, in that order of precedence.
func MustLoad(args []string) *Config {
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("compass", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("env", "production", "environment: local, development, production")
	flags.Int("scale", defaultScale, "decimal places of the average destination")
	flags.String("routes-file", "", "read the routes from a JSON file instead of asking for them")
	flags.String("metrics-file", "", "write Prometheus metrics to this file after the run")
	flags.String("quit-word", "q", "answer that ends the list of directions")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		panic("failed to parse command line flags")
	}

	v := viper.New()
	v.SetEnvPrefix("COMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic("failed to bind command line flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read config file")
		}
	}

	// GetInt turns a malformed value into 0, so the conversion error is checked here.
	if _, err := cast.ToIntE(v.Get("scale")); err != nil {
		panic("failed to parse scale from configuration, must be an integer between 0 and 15")
	}
	scale := v.GetInt("scale")
	if scale < 0 || scale > maxScale {
		panic("failed to parse scale from configuration, must be an integer between 0 and 15")
	}

	return &Config{
		Env:         v.GetString("env"),
		Scale:       scale,
		RoutesFile:  v.GetString("routes-file"),
		MetricsFile: v.GetString("metrics-file"),
		QuitWord:    v.GetString("quit-word"),
	}
}
