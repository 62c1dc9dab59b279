package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docket/pkg/help"
)

const testBundle = `
greet:
  - "Says hello."
  - usage: "greet NAME"
farewell: "Says goodbye."
`

func writeBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0644))
	return path
}

// captureStdout runs f while collecting everything written to stdout.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestShowCommand(t *testing.T) {
	bundle := writeBundle(t)

	out := captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"show", "greet", "--bundle", bundle})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "Help:")
	assert.Contains(t, out, "Says hello.")
	assert.Contains(t, out, "usage = greet NAME")
}

func TestShowUnknownTopicFallsBack(t *testing.T) {
	out := captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"show", "no-such-topic"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "no documentation, runtime category = string")
}

func TestLoadBundleDirMissingIsSkipped(t *testing.T) {
	h := help.New()
	require.NoError(t, loadBundleDir(h, filepath.Join(t.TempDir(), "absent")))
}

func TestShowRequiresTopic(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"show"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}

func TestExportCommand(t *testing.T) {
	bundle := writeBundle(t)
	outPath := filepath.Join(t.TempDir(), "docs.html")

	_ = captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"export", outPath, "greet", "farewell", "--bundle", bundle})
		require.NoError(t, cmd.Execute())
	})

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	got := string(data)
	assert.Contains(t, got, "<h1>greet</h1>")
	assert.Contains(t, got, "<p>Says goodbye.</p>")
	assert.Contains(t, got, "<html>")
}

func TestExportFailsOnBadPath(t *testing.T) {
	bundle := writeBundle(t)
	outPath := filepath.Join(t.TempDir(), "missing", "docs.html")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"export", outPath, "greet", "--bundle", bundle})
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}

func TestGenconfigCommand(t *testing.T) {
	out := captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"genconfig"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "[providers]")
}

func TestTopicsCommand(t *testing.T) {
	t.Run("lists embedded topics", func(t *testing.T) {
		out := captureStdout(t, func() {
			cmd := NewRootCmd()
			cmd.SetArgs([]string{"topics"})
			require.NoError(t, cmd.Execute())
		})

		assert.Contains(t, out, "content-model")
		assert.Contains(t, out, "providers")
		assert.Contains(t, out, "bundles")
	})

	t.Run("shows one topic", func(t *testing.T) {
		out := captureStdout(t, func() {
			cmd := NewRootCmd()
			cmd.SetArgs([]string{"topics", "providers"})
			require.NoError(t, cmd.Execute())
		})

		assert.Contains(t, out, "Extension providers")
	})

	t.Run("unknown topic", func(t *testing.T) {
		out := captureStdout(t, func() {
			cmd := NewRootCmd()
			cmd.SetArgs([]string{"topics", "nope"})
			require.NoError(t, cmd.Execute())
		})

		assert.Contains(t, out, "Unknown topic 'nope'")
	})
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"version"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "docket version")
}
