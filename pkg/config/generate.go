package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// Starter returns the configuration written by podmerge init, seeded
// with the given project name.
func Starter(projectName string) Config {
	return Config{
		Project: ProjectConfig{Name: projectName, Podfile: "Podfile"},
		Hook:    HookConfig{Name: "post_install"},
		Pods:    PodsConfig{Binary: "pod", Timeout: "5m"},
		Plugins: PluginsConfig{Dir: "plugins"},
	}
}

// WriteStarter marshals a starter configuration to path.
func WriteStarter(filesystem types.FS, path, projectName string) error {
	data, err := gotoml.Marshal(Starter(projectName))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal starter configuration")
	}
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write configuration %q", path)
	}
	return nil
}
