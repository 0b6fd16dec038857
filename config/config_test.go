// SPDX-License-Identifier: MIT
// Package: commodel/config
//
// config_test.go - settings precedence and descriptor loading tests.

package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/config"
)

func TestLoadDefaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "info", s.Log.Level)
	require.Equal(t, 10000, s.Solver.MaxNodes)
	require.Equal(t, 1000.0, s.RedCom.MaxBound)
	require.Equal(t, "commodel.db", s.Store.Path)

	lvl, err := s.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
	require.Equal(t, 1e-6, s.LPOptions(nil).IntegerTolerance)
	require.Equal(t, 1e-6, s.RedComOptions(nil).ActivityTolerance)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commodel.yaml")
	yml := "log:\n  level: debug\nsolver:\n  maxnodes: 50\nredcom:\n  maxbound: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("COMMODEL_SOLVER_MAXNODES", "7")

	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", s.Log.Level)
	require.Equal(t, 7, s.Solver.MaxNodes)
	require.Equal(t, 500.0, s.RedCom.MaxBound)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("COMMODEL_LOG_LEVEL", "loud")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidLevel)
}

func TestDescriptor(t *testing.T) {
	dir := t.TempDir()
	m, err := builder.ToyModel("toy", 10)
	require.NoError(t, err)
	require.NoError(t, m.WriteFile(filepath.Join(dir, "toy.json")))

	yml := `compartment: exchg
exchange_prefix: EX_C_
inputs: [S]
outputs: [P]
growth_rate: 0.5
models:
  - species: species1
    file: toy.json
    objective: C_to_P
    exchange_prefix: EX_
    inputs: [S_c]
    outputs: [P_c]
    exchange_ids: {S_c: S, P_c: P}
    fraction: 0.25
  - species: species2
    file: toy.json
    objective: C_to_P
    exchange_prefix: EX_
    inputs: [S_c]
    outputs: [P_c]
    exchange_ids: {S_c: S, P_c: P}
`
	path := filepath.Join(dir, "community.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	d, err := config.ReadDescriptor(path)
	require.NoError(t, err)
	require.Equal(t, 0.5, d.GrowthRate)
	require.Equal(t, map[string]float64{"species1": 0.25}, d.Fractions())

	c, err := d.Community()
	require.NoError(t, err)
	require.Equal(t, []string{"species1", "species2"}, c.Species())
	require.NoError(t, community.Validate(c))
	require.NotSame(t, c.Models[0].Model, c.Models[1].Model)

	var buf bytes.Buffer
	require.NoError(t, config.WriteDescriptor(&buf, d))
	back, err := config.DecodeDescriptor(&buf, dir)
	require.NoError(t, err)
	require.Equal(t, d.Models, back.Models)
}

func TestDescriptorErrors(t *testing.T) {
	_, err := config.DecodeDescriptor(strings.NewReader("unknown_key: 1\n"), "")
	require.Error(t, err)

	d, err := config.DecodeDescriptor(strings.NewReader("models:\n  - species: a\n"), "")
	require.NoError(t, err)
	_, err = d.Community()
	require.ErrorIs(t, err, config.ErrNoModelFile)
}
