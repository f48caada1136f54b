package logger

import (
	"os"

	"github.com/goto/salt/log"
)

const defaultLevel = "INFO"

// NewClientLogger returns the logger used by client commands.
func NewClientLogger() log.Logger {
	return NewClientLoggerWithLevel(defaultLevel)
}

func NewClientLoggerWithLevel(level string) log.Logger {
	if level == "" {
		level = defaultLevel
	}
	return log.NewLogrus(
		log.LogrusWithLevel(level),
		log.LogrusWithWriter(os.Stdout),
	)
}
