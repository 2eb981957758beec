package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

// GetLogrusInstance returns the shared JSON logger. When LOG_FILE is set the
// log is mirrored to that file, creating the directory if needed.
func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})

		if path := os.Getenv("LOG_FILE"); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				logrusInstance.Warnf("Could not create log directory for %s: %v", path, err)
				return logrusInstance
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				logrusInstance.Warnf("Could not open log file %s: %v", path, err)
				return logrusInstance
			}
			logrusInstance.SetOutput(io.MultiWriter(os.Stdout, file))
		}
	}
	return logrusInstance
}
