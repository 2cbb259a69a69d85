// Package logger holds the process-wide zap logger used by protodts.
//
// The CLI calls Initialize once (console or JSON output, level derived from
// the -v count); library packages log through the package-level helpers and
// never construct their own loggers. Before Initialize runs every call is a
// no-op, so tests and library consumers stay quiet by default.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
// jsonOutput selects zap's production JSON encoder; otherwise a compact
// console encoder writes to stderr so generated output on stdout stays clean.
func Initialize(jsonOutput bool, verbosity int) error {
	return build(jsonOutput, VerbosityToLevel(verbosity))
}

// InitializeWithLevel is Initialize with an explicit level name
// ("debug", "info", "warn", "error"), as read from configuration.
func InitializeWithLevel(jsonOutput bool, levelName string) error {
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return err
	}
	return build(jsonOutput, level)
}

func build(jsonOutput bool, level zapcore.Level) error {
	JSONOutput = jsonOutput

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	Logger = zap.New(zapcore.NewCore(
		newConsoleEncoder(),
		zapcore.Lock(os.Stderr),
		level,
	)).Sugar()
	return nil
}

// Named returns a child of the global logger for one component.
func Named(component string) *zap.SugaredLogger {
	return Logger.Named(component)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
