// Package config loads docket's configuration: embedded defaults,
// an optional user file from the XDG config directory, and DOCKET_*
// environment overrides, in that order.
package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/docket/pkg/errors"
)

//go:embed embedded/docket.toml
var defaultConfig []byte

const envPrefix = "DOCKET_"

// Config is docket's runtime configuration.
type Config struct {
	Output    OutputConfig    `koanf:"output" toml:"output"`
	Docs      DocsConfig      `koanf:"docs" toml:"docs"`
	Providers ProvidersConfig `koanf:"providers" toml:"providers"`
	Logging   LoggingConfig   `koanf:"logging" toml:"logging"`
}

// OutputConfig controls display settings.
type OutputConfig struct {
	Color    bool `koanf:"color" toml:"color"`
	Headings int  `koanf:"headings" toml:"headings"`
}

// DocsConfig locates YAML documentation bundles.
type DocsConfig struct {
	Dirs []string `koanf:"dirs" toml:"dirs"`
}

// ProvidersConfig selects the extension providers enabled at startup.
type ProvidersConfig struct {
	Enabled []string `koanf:"enabled" toml:"enabled"`
}

// LoggingConfig holds the default log verbosity.
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// rawBytesProvider implements a koanf provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds the configuration. An explicit path overrides the XDG
// search; an empty path falls back to the XDG config file when one
// exists. Environment variables win over both.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse default configuration")
	}

	if path == "" {
		if found, err := xdg.SearchConfigFile("docket/docket.toml"); err == nil {
			path = found
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot unmarshal configuration")
	}
	return &cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	if err := tomlv2.Unmarshal(defaultConfig, &cfg); err != nil {
		// The embedded file ships with the binary; failing to parse it
		// is a build defect.
		panic(err)
	}
	return &cfg
}

// TOML renders the configuration as TOML, used by genconfig to emit a
// starting point for a user config file.
func (c *Config) TOML() (string, error) {
	out, err := tomlv2.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal configuration")
	}
	return string(out), nil
}
