package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShow = `
name: test
items:
  - name: fade in
    marker: lit
    components:
      - type: light/brightness
        target: star
        start: 0
        end: 1
        duration: 1s
  - name: grow
    components:
      - type: transform/scale
        displayName: Grow
        target: star
        mode: relative
        end: {x: 1, y: 0, z: 0}
        duration: 2s
`

func writeFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	show := filepath.Join(dir, "show.yaml")
	require.NoError(t, os.WriteFile(show, []byte(testShow), 0o644))

	config := filepath.Join(dir, "config.yaml")
	body := "mqtt:\n  url: tcp://localhost:1883\nstrip:\n  pixels: 20\n  frameRate: 10\nlights:\n  - id: star\n    count: 5\nsequence:\n  asset: " + show + "\n"
	require.NoError(t, os.WriteFile(config, []byte(body), 0o644))
	return config, show
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	config, show := writeFiles(t)

	out, err := execute(t, "inspect", "--config", config, show)
	require.NoError(t, err)
	assert.Contains(t, out, "1. fade in\n     Brightness\n     marker lit\n")
	assert.Contains(t, out, "2. grow\n     Grow\n")
	assert.Contains(t, out, "steps: 3, duration: 3s\n")
	assert.NotContains(t, out, "frames:")
}

func TestInspectSimulate(t *testing.T) {
	config, _ := writeFiles(t)

	out, err := execute(t, "inspect", "--config", config, "--simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "1s  marker lit\n")
	assert.Contains(t, out, "frames: 30, state: idle, modified: true\n")
}

func TestInspectErrors(t *testing.T) {
	config, _ := writeFiles(t)

	_, err := execute(t, "inspect", "--config", config, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "inspect", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
