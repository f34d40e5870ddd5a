package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with CLI-friendly configuration
type Logger struct {
	zerolog.Logger
}

var log *Logger

// parseLogLevel converts a log level string to zerolog.Level
// Returns info level as default for empty or invalid values
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Init initializes the global logger. Verbose and quiet are CLI flags and
// override the configured level.
func Init(verbose bool, quiet bool, jsonOutput bool, logLevel string) {
	var output io.Writer = os.Stderr

	if !jsonOutput {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	zerolog.SetGlobalLevel(parseLogLevel(logLevel))
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	log = &Logger{zerolog.New(output).With().Timestamp().Logger()}
}

// ensure returns the global logger, initializing a default one if Init was
// never called (tests, library use)
func ensure() *Logger {
	if log == nil {
		Init(false, false, false, "")
	}
	return log
}

func Trace(msg string)                          { ensure().Trace().Msg(msg) }
func Debug(msg string)                          { ensure().Debug().Msg(msg) }
func Debugf(format string, args ...interface{}) { ensure().Debug().Msgf(format, args...) }
func Info(msg string)                           { ensure().Info().Msg(msg) }
func Infof(format string, args ...interface{})  { ensure().Info().Msgf(format, args...) }
func Warn(msg string)                           { ensure().Warn().Msg(msg) }
func Warnf(format string, args ...interface{})  { ensure().Warn().Msgf(format, args...) }
func Error(msg string)                          { ensure().Error().Msg(msg) }
func Errorf(format string, args ...interface{}) { ensure().Error().Msgf(format, args...) }
func Fatalf(format string, args ...interface{}) { ensure().Fatal().Msgf(format, args...) }
