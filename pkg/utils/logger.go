package utils

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
)

// GetLogger returns the shared application logger, creating it with defaults
// on first use. Call InitLogger early to apply configured level and format.
func GetLogger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return logger
}

// InitLogger configures the shared logger from the resolved level and format.
// Unknown values keep the defaults rather than failing the run.
func InitLogger(level, format string) *logrus.Logger {
	l := GetLogger()

	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}
