package logger

import (
	"io"
	"os"

	"homeo-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the plain line logger used by the command entry point.
func NewLogrusLogger(internalConfig *config.InternalConfig, output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	switch internalConfig.App.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("clinicctl_cli.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default output")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
