// ABOUTME: Logger implementation backed by logrus with text or JSON output
// ABOUTME: Optionally writes to a size-rotated log file through lumberjack

package standard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"sync-bookmarks/core/interfaces"
)

// Options configures a StandardLogger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string
	// Format is text or json
	Format string
	// File, when set, sends output to a rotated log file instead of Output
	File string
	// Output defaults to os.Stderr
	Output io.Writer
}

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a logger at info level writing text to stderr
func NewStandardLogger() *StandardLogger {
	logger, _ := NewLogger(Options{})
	return logger
}

// NewLogger creates a logger from opts; an unknown level or format is an error
func NewLogger(opts Options) (*StandardLogger, error) {
	log := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	switch {
	case opts.File != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	default:
		log.SetOutput(os.Stderr)
	}

	return &StandardLogger{log: log}, nil
}

// SetVerbose switches the logger to debug level
func (l *StandardLogger) SetVerbose() {
	l.log.SetLevel(logrus.DebugLevel)
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *StandardLogger) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

var _ interfaces.Logger = (*StandardLogger)(nil)
