// Package config resolves the lvpath command-line configuration from flags,
// environment variables and an optional .env file.
//
// Precedence, highest first: flags, process environment, .env file,
// built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvGraph        = "LVPATH_GRAPH"
	EnvFrom         = "LVPATH_FROM"
	EnvTo           = "LVPATH_TO"
	EnvMaxDistance  = "LVPATH_MAX_DISTANCE"
	EnvCheckWeights = "LVPATH_CHECK_WEIGHTS"
)

// DefaultFrom is the start node used when neither flags, environment nor
// the graph document name one.
const DefaultFrom = "A"

// ErrInvalidConfig indicates unusable flags or values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one lvpath run.
type Config struct {
	// GraphPath is the graph document to load; empty selects the built-in
	// sample graph.
	GraphPath string

	// From is the start node. Target-less runs print distances only.
	// Both may be left empty by Load and filled by Defaults.
	From string
	To   string

	// MaxDistance caps path lengths; 0 means no cap.
	MaxDistance int64

	// CheckWeights rejects graphs with negative weights before the search.
	CheckWeights bool
}

// Load parses args on top of environment defaults. envFiles are loaded
// into the environment first; with none given, ./.env is loaded if present.
// Variables already set in the process environment are never overridden.
//
// From and To may come back empty; call Defaults and then Validate once the
// graph document is known.
//
// flag.ErrHelp is returned unchanged for -h/-help. Every other failure wraps
// ErrInvalidConfig.
func Load(args []string, output io.Writer, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		// Missing .env is fine.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	maxDistance, err := getEnvAsInt64(EnvMaxDistance, 0)
	if err != nil {
		return nil, err
	}
	checkWeights, err := getEnvAsBool(EnvCheckWeights, false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GraphPath:    getEnvWithDefault(EnvGraph, ""),
		From:         getEnvWithDefault(EnvFrom, ""),
		To:           getEnvWithDefault(EnvTo, ""),
		MaxDistance:  maxDistance,
		CheckWeights: checkWeights,
	}

	fs := flag.NewFlagSet("lvpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.GraphPath, "graph", cfg.GraphPath, "graph document (.json, .yaml, .msgpack, optionally .zst); empty uses the sample graph")
	fs.StringVar(&cfg.From, "from", cfg.From, "start node")
	fs.StringVar(&cfg.To, "to", cfg.To, "target node; empty prints distances only")
	fs.Int64Var(&cfg.MaxDistance, "max-distance", cfg.MaxDistance, "ignore paths longer than this; 0 disables the cap")
	fs.BoolVar(&cfg.CheckWeights, "check", cfg.CheckWeights, "reject negative edge weights before searching")

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %q", ErrInvalidConfig, strings.Join(fs.Args(), " "))
	}

	if cfg.MaxDistance < 0 {
		return nil, errNegativeDistance(cfg.MaxDistance)
	}

	return cfg, nil
}

// Defaults fills an empty From with start (or DefaultFrom when start is
// empty too) and an empty To with target.
func (c *Config) Defaults(start, target string) {
	if c.From == "" {
		c.From = start
	}
	if c.From == "" {
		c.From = DefaultFrom
	}
	if c.To == "" {
		c.To = target
	}
}

// Validate checks that the configuration can drive a search. After Defaults
// the start node is always set; the empty-start check guards a Config built
// by hand or validated before Defaults.
func (c *Config) Validate() error {
	if c.From == "" {
		return fmt.Errorf("%w: start node is required", ErrInvalidConfig)
	}
	if c.MaxDistance < 0 {
		return errNegativeDistance(c.MaxDistance)
	}

	return nil
}

func errNegativeDistance(d int64) error {
	return fmt.Errorf("%w: max distance must be non-negative (got %d)", ErrInvalidConfig, d)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 rejects a set but unparsable value, like the matching flag.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, valueStr)
	}
	return value, nil
}
