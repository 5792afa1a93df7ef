// Package logger provides the shared leveled logger used across binfetch.
// Messages are tagged with a category field so host logs can be filtered
// per subsystem.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is a type alias for log fields to make the API cleaner.
type Fields = logrus.Fields

var (
	logger   *logrus.Logger
	loggerMu sync.Mutex
)

// InitLogger initializes the global logger.
func InitLogger(logLevel string, noColor bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel // fallback to info level
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: noColor,
		ForceColors:   !noColor,
		FullTimestamp: false,
	})
}

// GetLogger returns the configured logger instance.
func GetLogger() *logrus.Logger {
	loggerMu.Lock()
	l := logger
	loggerMu.Unlock()
	if l == nil {
		InitLogger("info", false)
		loggerMu.Lock()
		l = logger
		loggerMu.Unlock()
	}
	return l
}

// SetOutput redirects log output, primarily for capturing logs in tests.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Info(msg)
}

// Debug logs a debug message (only shown when debug level is enabled).
func Debug(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Debug(msg)
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Warn(msg)
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().WithFields(mergeFields(fields...)).Error(msg)
}

// mergeFields merges multiple logrus.Fields into one.
func mergeFields(fields ...Fields) logrus.Fields {
	result := make(logrus.Fields)
	for _, field := range fields {
		for k, v := range field {
			result[k] = v
		}
	}
	return result
}
