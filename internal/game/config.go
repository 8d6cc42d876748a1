package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/delvewood/internal/telemetry"
	"github.com/samdwyer/delvewood/internal/world"
)

// DefaultFOVRadius is how far the explorer sees when nothing else is set.
const DefaultFOVRadius = 8

// Environment variables read by LoadConfig.
const (
	EnvSeed             = "DELVEWOOD_SEED"
	EnvFOVRadius        = "DELVEWOOD_FOV_RADIUS"
	EnvHoneycombAPIKey  = "HONEYCOMB_DELVEWOOD_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_DELVEWOOD_DATASET"
)

// ErrBadSetting is returned when an environment variable cannot be parsed.
var ErrBadSetting = errors.New("bad setting")

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. The same seed always builds the same world.
	// A seed of 0 means a seed will be picked at startup.
	Seed uint64

	// FOVRadius is the explorer's sight radius in cells.
	FOVRadius int

	MapGen    world.MapGenConfig
	Telemetry telemetry.Config
}

// DefaultConfig returns a configuration with normal generation parameters
// and no fixed seed.
func DefaultConfig() Config {
	return Config{
		FOVRadius: DefaultFOVRadius,
		MapGen:    world.NormalConfig(),
	}
}

// LoadConfig builds a Config from DefaultConfig and the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrBadSetting, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := getenv(EnvFOVRadius); v != "" {
		radius, err := strconv.Atoi(v)
		if err != nil || radius < 1 {
			return cfg, fmt.Errorf("%w: %s=%q must be a positive integer", ErrBadSetting, EnvFOVRadius, v)
		}
		cfg.FOVRadius = radius
	}

	cfg.Telemetry = telemetry.Config{
		Endpoint: telemetry.DefaultEndpoint,
		APIKey:   getenv(EnvHoneycombAPIKey),
		Dataset:  getenv(EnvHoneycombDataset),
	}
	return cfg, nil
}

// ResolveSeed returns the configured seed, or a time-derived one when the
// seed is 0. The result is never 0, so it can be shown and replayed.
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	if s := uint64(now.UnixNano()); s != 0 {
		return s
	}
	return 1
}
