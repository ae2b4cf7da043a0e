package shared

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to stderr at the
// given level ("debug", "info", "warn", "error"). Unknown levels mean info.
func SetupLogger(level string) *log.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger is SetupLogger with an explicit writer.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pokerlogs",
	})
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
