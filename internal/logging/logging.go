package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// LogFileEnv overrides the log file location
const LogFileEnv = "SWIMLANE_LOG_FILE"

// Path returns the log file path: $SWIMLANE_LOG_FILE, or
// ~/.swimlane/logs/swimlane.log
func Path() (string, error) {
	if p := os.Getenv(LogFileEnv); p != "" {
		return p, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".swimlane", "logs", "swimlane.log"), nil
}

// Init initializes the logging system, writing logs to the file from Path.
// Uses text format for human readability.
func Init() error {
	logPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return nil
}
