// SPDX-License-Identifier: MIT
// Package: commodel/logging
//
// logging_test.go - level switching and output format.

package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/logging"
)

func TestLevelSwitch(t *testing.T) {
	prev := logging.Level()
	t.Cleanup(func() { logging.SetLevel(prev) })

	var buf bytes.Buffer
	l := logging.New(&buf)

	logging.SetLevel(slog.LevelInfo)
	l.Debug("hidden")
	require.Empty(t, buf.String())

	logging.SetLevel(slog.LevelDebug)
	l.Debug("shown", "species", 2)
	out := buf.String()
	require.Contains(t, out, "level=debug")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "species=2")
	require.Contains(t, out, "ts=")
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	logging.Logger().Warn("redirected")
	require.Contains(t, buf.String(), "msg=redirected")
}
