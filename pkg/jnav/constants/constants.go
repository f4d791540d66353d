// Package constants defines shared keys, tokens and configuration values
// used throughout jnav.
package constants

import (
	"math"
	"os"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level when set (e.g. "debug").
const LogLevelEnvVar = "JNAV_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Reserved keys shared by route strings and backstack entries.
const (
	ParamsKey = "params" // Route query key and argument name carrying encoded params
	ResultKey = "result" // State bag key carrying an encoded back result
)

// ParamsPlaceholder is the token substituted with encoded params when a route is built.
const ParamsPlaceholder = "{" + ParamsKey + "}"

// ParamsQuery separates a destination path from its params in a route string.
const ParamsQuery = "?" + ParamsKey + "="

// DefaultQueueCapacity is the intent queue bound when none is configured.
const DefaultQueueCapacity = math.MaxInt
