package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the logger with pretty console output
func SetupLogger(level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parsed,
		ReportTimestamp: true,
	})
}
