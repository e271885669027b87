// Package logx:  This is the application logger.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// New constructs a JSON slog logger at the desired level. Output goes to w,
// or to stderr when w is nil so stdout stays reserved for the report.
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
