// Package logging provides structured logging for holoterm.
//
// The TUI owns the terminal while it runs, so the default sink is a
// rotated log file under ~/.holoterm; console output is opt-in and only
// useful for the non-interactive subcommands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/holoterm/holoterm/internal/fileperms"
)

var (
	logger *Logger
	mu     sync.RWMutex
)

// Level represents log level
type Level int

const (
	// DebugLevel has verbose message
	DebugLevel Level = iota
	// InfoLevel is default log level
	InfoLevel
	// WarnLevel is for warning conditions
	WarnLevel
	// ErrorLevel is for error conditions
	ErrorLevel
	// FatalLevel is for fatal conditions
	FatalLevel
)

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level
	Level Level

	// Console enables console output on stderr. Keep this off while the
	// TUI is running or the escape sequences fight over the terminal.
	Console bool

	// File enables file output
	File bool

	// Filename is the file to write logs to
	Filename string

	// MaxSize is the maximum size in megabytes of the log file
	MaxSize int

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int

	// MaxAge is the maximum number of days to retain old log files
	MaxAge int
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		Console:    false,
		File:       true,
		Filename:   defaultLogPath(),
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "holoterm.log")
	}
	return filepath.Join(home, ".holoterm", "holoterm.log")
}

// Logger wraps zerolog logger
type Logger struct {
	*zerolog.Logger
	config *Config
}

// Init configures the global logger. Calling it again replaces the
// configuration; the CLI does this once the config file is loaded.
func Init(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(config)
	log.Logger = *logger.Logger
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Init(DefaultConfig())
		return GetLogger()
	}
	return l
}

func newLogger(config *Config) *Logger {
	var writers []io.Writer

	if config.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if config.File && config.Filename != "" {
		logDir := filepath.Dir(config.Filename)
		if err := os.MkdirAll(logDir, fileperms.ConfigDir); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   config.Filename,
				MaxSize:    config.MaxSize,
				MaxBackups: config.MaxBackups,
				MaxAge:     config.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	zl := zerolog.New(writer).With().Timestamp().Logger().Level(convertLevel(config.Level))

	return &Logger{
		Logger: &zl,
		config: config,
	}
}

func convertLevel(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// With creates a child logger with the given fields
func (l *Logger) With(fields map[string]interface{}) *Logger {
	ctx := l.Logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	zl := ctx.Logger()
	return &Logger{
		Logger: &zl,
		config: l.config,
	}
}

// WithError creates a child logger with the error field set
func (l *Logger) WithError(err error) *Logger {
	zl := l.Logger.With().Err(err).Logger()
	return &Logger{
		Logger: &zl,
		config: l.config,
	}
}

// Global logging functions that use the global logger

// Debug logs a debug message
func Debug(msg string) {
	GetLogger().Debug().Msg(msg)
}

// Debugf logs a formatted debug message
func Debugf(format string, v ...interface{}) {
	GetLogger().Debug().Msgf(format, v...)
}

// Info logs an info message
func Info(msg string) {
	GetLogger().Info().Msg(msg)
}

// Infof logs a formatted info message
func Infof(format string, v ...interface{}) {
	GetLogger().Info().Msgf(format, v...)
}

// Warn logs a warning message
func Warn(msg string) {
	GetLogger().Warn().Msg(msg)
}

// Warnf logs a formatted warning message
func Warnf(format string, v ...interface{}) {
	GetLogger().Warn().Msgf(format, v...)
}

// Error logs an error message
func Error(msg string) {
	GetLogger().Error().Msg(msg)
}

// Errorf logs a formatted error message
func Errorf(format string, v ...interface{}) {
	GetLogger().Error().Msgf(format, v...)
}

// WithField adds a field to the logger
func WithField(key string, value interface{}) *Logger {
	return GetLogger().With(map[string]interface{}{key: value})
}

// WithError adds an error field to the logger
func WithError(err error) *Logger {
	return GetLogger().WithError(err)
}
