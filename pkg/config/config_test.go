package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/podmerge/pkg/config"
	"github.com/arthur-debert/podmerge/pkg/filesystem"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Project.Name)
	assert.Equal(t, "Podfile", cfg.Project.Podfile)
	assert.Equal(t, "post_install", cfg.Hook.Name)
	assert.Equal(t, "pod", cfg.Pods.Binary)
	assert.Equal(t, "plugins", cfg.Plugins.Dir)
	assert.Equal(t, 5*time.Minute, cfg.Pods.TimeoutDuration())
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `[project]
name = "MyApp"
podfile = "Podfile.shared"

[pods]
timeout = "90s"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".podmerge.toml"), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "MyApp", cfg.Project.Name)
	assert.Equal(t, "Podfile.shared", cfg.Project.Podfile)
	assert.Equal(t, 90*time.Second, cfg.Pods.TimeoutDuration())
	// Keys the file does not set keep their defaults.
	assert.Equal(t, "post_install", cfg.Hook.Name)
}

func TestHiddenFileWinsOverPlain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".podmerge.toml"),
		[]byte("[hook]\nname = \"pre_install\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "podmerge.toml"),
		[]byte("[hook]\nname = \"post_integrate\"\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "pre_install", cfg.Hook.Name)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".podmerge.toml"),
		[]byte("[project]\nname = \"FromFile\"\n"), 0o644))

	t.Setenv("PODMERGE_PROJECT_NAME", "FromEnv")
	t.Setenv("PODMERGE_HOOK_NAME", "post_integrate")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.Project.Name)
	assert.Equal(t, "post_integrate", cfg.Hook.Name)
}

func TestLoadBadToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".podmerge.toml"),
		[]byte("[project\nname ="), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
}

func TestTimeoutDurationBadInput(t *testing.T) {
	p := config.PodsConfig{Timeout: "soon"}
	assert.Equal(t, time.Duration(0), p.TimeoutDuration())
}

func TestWriteStarter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".podmerge.toml")
	require.NoError(t, config.WriteStarter(filesystem.NewOS(), path, "MyApp"))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "MyApp", cfg.Project.Name)
	assert.Equal(t, "Podfile", cfg.Project.Podfile)
}
