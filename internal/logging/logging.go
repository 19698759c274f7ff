// Package logging builds the leveled logger used by the setup commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug messages are shown only when
// verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "townsetup",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
