// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"log/slog"

	"greeter/internal/config/configs"
)

// New returns a slog.Logger writing to w with the handler and level selected
// by cfg.
func New(cfg configs.Logger, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
