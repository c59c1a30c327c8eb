package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RendersPlan(t *testing.T) {
	t.Parallel()

	flow := `
task "extract" {}

task "publish" {
  depends_on = ["extract"]
}
`
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(flow), 0o600))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	require.NoError(t, run(out, errOut, []string{path}))

	assert.Contains(t, out.String(), "Flow plan: 2 tasks")
	assert.Contains(t, out.String(), "publish  after=[extract]")
}

func TestRun_InvalidFlow(t *testing.T) {
	t.Parallel()

	// A syntax error in the flow must come back as a plain error, not a
	// crash.
	invalid := `
task "broken" {
  arguments {
`
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(invalid), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	require.NoError(t, run(out, errOut, []string{"-h"}))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
