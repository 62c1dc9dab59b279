package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docket/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 1, cfg.Output.Headings)
	assert.Equal(t, []string{"struct"}, cfg.Providers.Enabled)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
}

func TestLoadDefaultsOnly(t *testing.T) {
	// A path that does not exist falls back to the embedded defaults.
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.Output.Color)
	assert.Equal(t, []string{"struct"}, cfg.Providers.Enabled)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docket.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
color = false
headings = 2

[docs]
dirs = ["/srv/docs"]
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 2, cfg.Output.Headings)
	assert.Equal(t, []string{"/srv/docs"}, cfg.Docs.Dirs)
	// Untouched sections keep their defaults.
	assert.Equal(t, []string{"struct"}, cfg.Providers.Enabled)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docket.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DOCKET_OUTPUT_HEADINGS", "3")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Output.Headings)
}

func TestTOMLRoundTrip(t *testing.T) {
	out, err := config.Default().TOML()
	require.NoError(t, err)

	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "color = true")
	assert.Contains(t, out, "[providers]")
}
