package logging

import (
	"io"
	"log"
	"os"

	"github.com/katyella/lazyroster/internal/constants"
)

// Logger levels
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// SetupLogger creates a logger for the application.
// In debug mode logs go to a file, otherwise they're discarded: the terminal
// belongs to the UI once the program starts.
func SetupLogger(debug bool) *log.Logger {
	return SetupLoggerAt(debug, constants.LogFileName)
}

// SetupLoggerAt is SetupLogger with an explicit log file path
func SetupLoggerAt(debug bool, path string) *log.Logger {
	if debug {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.LogFilePermissions)
		if err != nil {
			// Fallback to stderr if file creation fails
			return log.New(os.Stderr, "[lazyroster] ", log.LstdFlags|log.Lshortfile)
		}
		return log.New(file, "[lazyroster] ", log.LstdFlags|log.Lshortfile)
	}

	return log.New(io.Discard, "", 0)
}

// Debug logs a debug message
func Debug(logger *log.Logger, msg string, args ...interface{}) {
	if logger != nil {
		logger.Printf("["+LevelDebug+"] "+msg, args...)
	}
}

// Info logs an info message
func Info(logger *log.Logger, msg string, args ...interface{}) {
	if logger != nil {
		logger.Printf("["+LevelInfo+"] "+msg, args...)
	}
}

// Warn logs a warning message
func Warn(logger *log.Logger, msg string, args ...interface{}) {
	if logger != nil {
		logger.Printf("["+LevelWarn+"] "+msg, args...)
	}
}

// Error logs an error message
func Error(logger *log.Logger, msg string, args ...interface{}) {
	if logger != nil {
		logger.Printf("["+LevelError+"] "+msg, args...)
	}
}
