package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogConfig controls output destinations and rotation for all loggers.
type LogConfig struct {
	Level      logrus.Level // Minimum level to emit
	LogToFile  bool         // Also write to rotated files under LogDir
	LogDir     string       // Directory for log files
	MaxSizeMB  int          // Rotate after this many megabytes
	MaxBackups int          // Rotated files to keep
	MaxAgeDays int          // Days to keep rotated files
}

// DefaultConfig reads LOG_LEVEL / LOG_TO_FILE / LOG_DIR from the
// environment and fills sane rotation defaults.
func DefaultConfig() *LogConfig {
	level := logrus.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := logrus.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}

	return &LogConfig{
		Level:      level,
		LogToFile:  os.Getenv("LOG_TO_FILE") == "true",
		LogDir:     dir,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
	}
}
