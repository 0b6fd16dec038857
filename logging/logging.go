// SPDX-License-Identifier: MIT
// Package: commodel/logging
//
// logging.go - process-wide slog text logger with a runtime level switch.

// Package logging owns the process logger used by the CLI. Library packages
// never read it implicitly; they receive a *slog.Logger through their options.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	levelVar = new(slog.LevelVar)
	mu       sync.RWMutex
	logger   = New(os.Stderr)
)

// New returns a text logger writing to w, filtered by the shared level.
func New(w io.Writer) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: levelVar,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339Nano))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

// SetLevel sets the minimum level of every logger made by New.
func SetLevel(l slog.Level) { levelVar.Set(l) }

// Level returns the current minimum level.
func Level() slog.Level { return levelVar.Level() }

// Logger returns the process logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput redirects the process logger to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = New(w)
}
