package pluginspec

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/podmerge/pkg/logging"
	"github.com/arthur-debert/podmerge/pkg/manifest"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// Discover scans the plugins directory for installed plugins with an
// iOS contribution. Plugins with a plugin.xml are loaded through it;
// plugins shipping only a bare Podfile fragment are picked up by
// convention. Directories with neither are skipped.
func Discover(filesystem types.FS, pluginsDir string) ([]*Spec, error) {
	logger := logging.GetLogger("pluginspec")

	entries, err := filesystem.ReadDir(pluginsDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("dir", pluginsDir).Msg("plugins directory missing, nothing to discover")
			return nil, nil
		}
		return nil, err
	}

	var specs []*Spec
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(pluginsDir, entry.Name())

		if _, err := filesystem.Stat(filepath.Join(dir, ManifestFileName)); err == nil {
			spec, err := Load(filesystem, dir)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
			continue
		}

		fragmentPath := filepath.Join(dir, manifest.DefaultFileName)
		if _, err := filesystem.Stat(fragmentPath); err == nil {
			specs = append(specs, &Spec{
				ID:           entry.Name(),
				FragmentPath: fragmentPath,
			})
		}
	}

	logger.Debug().Str("dir", pluginsDir).Int("count", len(specs)).Msg("discovered plugins")
	return specs, nil
}
