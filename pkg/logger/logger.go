package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is the minimum level that gets written
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Config controls where and how log lines are written
type Config struct {
	Level Level
	// Pretty switches to the human readable console writer
	Pretty bool
	// Output defaults to os.Stderr so logs never mix with command output
	Output io.Writer
}

var defaultLogger zerolog.Logger

// Configure replaces the package logger.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	level := zerolog.WarnLevel
	switch cfg.Level {
	case DebugLevel:
		level = zerolog.DebugLevel
	case InfoLevel:
		level = zerolog.InfoLevel
	case ErrorLevel:
		level = zerolog.ErrorLevel
	}

	var w io.Writer = cfg.Output
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.Kitchen}
	}

	defaultLogger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug starts a debug level event
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info level event
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn level event
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error level event
func Error() *zerolog.Event { return defaultLogger.Error() }

// WithField returns a child logger carrying key=value on every line.
func WithField(key string, value interface{}) zerolog.Logger {
	return defaultLogger.With().Interface(key, value).Logger()
}

func init() {
	Configure(Config{Level: WarnLevel, Pretty: true})
}
