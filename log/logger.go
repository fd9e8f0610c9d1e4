package log

import (
	"io"

	"code.cloudfoundry.org/lager"
)

// NewLogger returns a logger writing JSON lines to w at INFO, or at DEBUG
// when debug is set.
func NewLogger(component string, w io.Writer, debug bool) lager.Logger {
	logger := lager.NewLogger(component)

	level := lager.INFO
	if debug {
		level = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(w, level))

	return logger
}
