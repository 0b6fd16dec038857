// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestToyBalancedPipeline(t *testing.T) {
	dir := t.TempDir()
	execute(t, "toy", "-o", dir)
	desc := filepath.Join(dir, "community.yaml")
	require.FileExists(t, desc)

	model := filepath.Join(dir, "balanced.json")
	execute(t, "build", "balanced", desc, "-o", model)

	out := execute(t, "fba", model)
	require.Contains(t, out, "status: optimal")
	require.Contains(t, out, "objective: 0.5\n")
}

func TestToyRedComPipeline(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "runs.db")
	execute(t, "toy", "-o", dir)

	model := filepath.Join(dir, "redcom.json")
	execute(t, "build", "redcom", filepath.Join(dir, "community.yaml"), "-o", model)

	out := execute(t, "--store", store, "redcom", model, "--mu", "1", "--save")
	require.Contains(t, out, "===SUMMARY OF REDCOM FBA===")
	require.Contains(t, out, "saved run ")

	out = execute(t, "--store", store, "minimal", model, "--mu", "1", "--enumerate", "0")
	require.Contains(t, out, "3 species sets found")

	out = execute(t, "--store", store, "runs", "--kind", "redcom")
	require.Contains(t, out, "species1=")
}

func TestMissingArgumentFails(t *testing.T) {
	cmd := RootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fba"})
	require.Error(t, cmd.Execute())
}

func TestScopeCommand(t *testing.T) {
	dir := t.TempDir()
	execute(t, "toy", "-o", dir)
	out := execute(t, "scope", filepath.Join(dir, "species1.json"))
	require.Contains(t, out, "0 reactions blocked")
}

func TestRandomMembersPipeline(t *testing.T) {
	dir := t.TempDir()
	execute(t, "toy", "--random", "--seed", "3", "--species", "a,b", "-o", dir)
	require.FileExists(t, filepath.Join(dir, "a.json"))
	require.FileExists(t, filepath.Join(dir, "b.json"))

	model := filepath.Join(dir, "balanced.json")
	execute(t, "build", "balanced", filepath.Join(dir, "community.yaml"), "-o", model)
	out := execute(t, "fba", model)
	require.Contains(t, out, "status: ")
}
