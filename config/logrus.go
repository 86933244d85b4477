package config

import (
	"net/http"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)
		logrusInstance.SetLevel(GetLogLevel())
	})
	return logrusInstance
}

func GetLogLevel() logrus.Level {
	v := os.Getenv("LOG_LEVEL")
	if v == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(v)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// PrintLogInfo records the outcome of a handler: which function ran, the
// status it answered with and the entry it touched, if any.
func PrintLogInfo(log *logrus.Logger, entryID string, statusCode int, functionName string) {
	entry := log.WithFields(logrus.Fields{
		"function":    functionName,
		"status":      statusCode,
		"status_text": http.StatusText(statusCode),
	})
	if entryID != "" {
		entry = entry.WithField("entry_id", entryID)
	}

	switch {
	case statusCode >= fiber.StatusInternalServerError:
		entry.Error("request failed")
	case statusCode >= fiber.StatusBadRequest:
		entry.Warn("request rejected")
	default:
		entry.Info("request served")
	}
}
