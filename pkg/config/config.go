// Package config loads podmerge configuration: embedded defaults,
// overridden by a project-level .podmerge.toml, overridden by
// PODMERGE_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/podmerge/pkg/errors"
)

//go:embed podmerge.toml
var defaultConfig []byte

// Config file names searched in the project directory, in order.
var configFileNames = []string{".podmerge.toml", "podmerge.toml"}

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "PODMERGE_"

// Config is the resolved podmerge configuration.
type Config struct {
	Project ProjectConfig `koanf:"project" toml:"project"`
	Hook    HookConfig    `koanf:"hook" toml:"hook"`
	Pods    PodsConfig    `koanf:"pods" toml:"pods"`
	Plugins PluginsConfig `koanf:"plugins" toml:"plugins"`
}

// ProjectConfig names the project and its manifest file.
type ProjectConfig struct {
	// Name is the target name in the generated Podfile. Empty means
	// "derive from the project directory".
	Name string `koanf:"name" toml:"name"`

	// Podfile is the manifest file name.
	Podfile string `koanf:"podfile" toml:"podfile"`
}

// HookConfig selects the lifecycle hook aggregated across plugins.
type HookConfig struct {
	Name string `koanf:"name" toml:"name"`
}

// PodsConfig configures the external pod binary.
type PodsConfig struct {
	Binary  string `koanf:"binary" toml:"binary"`
	Timeout string `koanf:"timeout" toml:"timeout"`
}

// PluginsConfig locates installed plugins.
type PluginsConfig struct {
	// Dir is the plugins directory, relative to the project directory
	// unless absolute.
	Dir string `koanf:"dir" toml:"dir"`
}

// TimeoutDuration parses the pod timeout, falling back to zero (which
// selects the runner's default) on bad input.
func (p PodsConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Load resolves configuration for a project directory.
func Load(projectDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	for _, name := range configFileNames {
		path := filepath.Join(projectDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse configuration %q", path)
		}
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envToKey maps PODMERGE_HOOK_NAME onto hook.name.
func envToKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
