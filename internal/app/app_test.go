package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgraphgo/internal/hclflow"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func writeFlow(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := NewConfig(Config{FlowPath: "flow.hcl"})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("rejects missing flow path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		assert.Error(t, err)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		_, err := NewConfig(Config{FlowPath: "f", Output: "yaml"})
		assert.Error(t, err)
		_, err = NewConfig(Config{FlowPath: "f", LogLevel: "loud"})
		assert.Error(t, err)
		_, err = NewConfig(Config{FlowPath: "f", LogFormat: "xml"})
		assert.Error(t, err)
	})
}

func TestRun_RendersPlan(t *testing.T) {
	t.Parallel()

	path := writeFlow(t, `
task "extract" {}

task "index" {
  depends_on = ["extract"]
}

task "report" {
  depends_on = ["extract"]
}

task "publish" {
  depends_on = ["index", "report"]
}
`)

	cfg, err := NewConfig(Config{FlowPath: path, LogLevel: "debug"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	a, err := NewApp(out, logs, cfg, hclflow.NewLoader())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Flow plan: 4 tasks")
	assert.Contains(t, out.String(), "publish  after=[index, report]")
	assert.Contains(t, logs.String(), "Dependency graph built.")
	assert.NotContains(t, out.String(), "Dependency graph built.", "logs must not leak into plan output")
}

func TestRun_EmptyFlow(t *testing.T) {
	t.Parallel()

	path := writeFlow(t, ``)
	cfg, err := NewConfig(Config{FlowPath: path})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	a, err := NewApp(out, logs, cfg, hclflow.NewLoader())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "No tasks found")
}

func TestRun_BuildFailure(t *testing.T) {
	t.Parallel()

	path := writeFlow(t, `
task "a" {
  depends_on = ["b"]
}

task "b" {
  depends_on = ["a"]
}
`)

	cfg, err := NewConfig(Config{FlowPath: path})
	require.NoError(t, err)

	a, err := NewApp(&bytes.Buffer{}, &safeBuffer{}, cfg, hclflow.NewLoader())
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle")
}
