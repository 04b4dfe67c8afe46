// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
//
// All loggers write to stderr: stdout is reserved for solved boards and the
// msgpack request/response stream.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// EnableDebug switches the package-level logger into debug mode with caller
// reporting, matching the -d flag of the binaries.
func EnableDebug() {
	log.SetLevel(log.DebugLevel)
	log.SetReportCaller(true)
	log.SetOutput(os.Stderr)
}
