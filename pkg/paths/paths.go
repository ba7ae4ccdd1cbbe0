// Package paths provides centralized path handling for podmerge:
// project directory resolution, the manifest location, the plugins
// directory, and XDG-compliant state paths.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/manifest"
)

// Environment variable names
const (
	// EnvProjectDir overrides the project directory.
	EnvProjectDir = "PODMERGE_PROJECT_DIR"

	// EnvPluginsDir overrides the plugins directory.
	EnvPluginsDir = "PODMERGE_PLUGINS_DIR"
)

// DefaultPluginsDirName is the directory plugins are installed under,
// relative to the project directory.
const DefaultPluginsDirName = "plugins"

// Paths resolves the locations podmerge works with.
type Paths struct {
	projectDir  string
	podfileName string
	pluginsDir  string
}

// New resolves paths for a project directory. An empty projectDir falls
// back to PODMERGE_PROJECT_DIR, then the working directory.
func New(projectDir, podfileName, pluginsDir string) (*Paths, error) {
	if projectDir == "" {
		projectDir = os.Getenv(EnvProjectDir)
	}
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot determine working directory")
		}
		projectDir = wd
	}
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid project directory %q", projectDir)
	}

	if podfileName == "" {
		podfileName = manifest.DefaultFileName
	}
	if pluginsDir == "" {
		pluginsDir = os.Getenv(EnvPluginsDir)
	}
	if pluginsDir == "" {
		pluginsDir = filepath.Join(abs, DefaultPluginsDirName)
	} else if !filepath.IsAbs(pluginsDir) {
		pluginsDir = filepath.Join(abs, pluginsDir)
	}

	return &Paths{
		projectDir:  abs,
		podfileName: podfileName,
		pluginsDir:  pluginsDir,
	}, nil
}

// ProjectDir returns the absolute project directory.
func (p *Paths) ProjectDir() string {
	return p.projectDir
}

// ProjectName returns the project name derived from the directory.
func (p *Paths) ProjectName() string {
	return filepath.Base(p.projectDir)
}

// ManifestPath returns the absolute path of the project Podfile.
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.projectDir, p.podfileName)
}

// PluginsDir returns the absolute plugins directory.
func (p *Paths) PluginsDir() string {
	return p.pluginsDir
}

// StateDir returns podmerge's XDG state directory.
func (p *Paths) StateDir() string {
	return filepath.Join(xdg.StateHome, "podmerge")
}
