package server

import (
	"context"
	"io"
	"os"

	adapterlogger "textile-erp-nav/internal/adapters/logger"
)

// Logger builds the service logger at level. An unknown level logs at info
// and says so.
func Logger(level string) *adapterlogger.SlogLogger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *adapterlogger.SlogLogger {
	lvl, err := adapterlogger.ParseLevel(level)
	logger := adapterlogger.NewWithWriter(w, lvl).With("service", ServiceName)
	if err != nil {
		logger.Warn(context.Background(), "falling back to info level", "error", err)
	}
	return logger
}
