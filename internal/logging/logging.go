package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	return SetupLoggingWithLevel("info")
}

// SetupLoggingWithLevel falls back to info when level is not a logrus level.
func SetupLoggingWithLevel(level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	logger.Out = os.Stdout
	logger.Level = parsed

	return logger
}
