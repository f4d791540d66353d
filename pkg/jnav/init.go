package jnav

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
	"github.com/BrandonKowalski/jnav/pkg/jnav/internal"
)

// Options configures jnav logging and queue sizing.
type Options struct {
	LogPath       string `toml:"log_path"`       // Full path for log file including filename (creates parent directories)
	LogLevel      string `toml:"log_level"`      // Application log level ("debug", "info", "warn", "error")
	QueueCapacity int    `toml:"queue_capacity"` // Intent queue bound, zero means unbounded
	Debug         bool   `toml:"debug"`          // Log jnav internals (dropped intents, codec failures) at debug level
}

// Init applies logging options. Call it before the first log line is written.
// JNAV_LOG_LEVEL, when set, takes precedence over options.LogLevel.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// NewChannelFromOptions creates a Channel sized by options.QueueCapacity.
func NewChannelFromOptions(options Options) *Channel {
	if options.QueueCapacity > 0 {
		return NewChannel(WithCapacity(options.QueueCapacity))
	}
	return NewChannel()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file opened through SetLogPath, if any.
func CloseLogger() {
	internal.CloseLogger()
}
