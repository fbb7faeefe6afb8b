// Package logger wires logrus with file rotation for the application and
// access logs. Loggers are created lazily and shared process-wide.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig
)

// Init sets up the logging system. A nil cfg falls back to DefaultConfig.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if config.LogToFile {
		if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// GetAppLogger returns the application logger.
func GetAppLogger() *logrus.Logger {
	return getLogger("app")
}

// GetAccessLogger returns the HTTP access logger.
func GetAccessLogger() *logrus.Logger {
	return getLogger("access")
}

func getLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	if config == nil {
		config = DefaultConfig()
	}

	l := logrus.New()
	l.SetLevel(config.Level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var out io.Writer = os.Stdout
	if config.LogToFile {
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(config.LogDir, name+".log"),
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotated)
	}
	l.SetOutput(out)

	loggers[name] = l
	return l
}
