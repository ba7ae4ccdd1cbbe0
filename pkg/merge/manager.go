package merge

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/fragment"
	"github.com/arthur-debert/podmerge/pkg/hooks"
	"github.com/arthur-debert/podmerge/pkg/logging"
	"github.com/arthur-debert/podmerge/pkg/platform"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// Manager pairs the engine with a filesystem: it reads fragments fresh
// on every call, reads the current manifest, and persists or deletes
// the result. It holds no other state; the manifest file itself is the
// store.
type Manager struct {
	fs           types.FS
	engine       *Engine
	manifestPath string
}

// NewManager creates a manager writing to the manifest at manifestPath.
func NewManager(filesystem types.FS, engine *Engine, manifestPath string) *Manager {
	return &Manager{
		fs:           filesystem,
		engine:       engine,
		manifestPath: manifestPath,
	}
}

// ManifestPath returns the path of the managed project manifest.
func (m *Manager) ManifestPath() string {
	return m.manifestPath
}

// Apply merges the fragment at fragmentPath into the manifest on behalf
// of owner. A missing fragment is not an error: it is treated as an
// implicit removal request.
func (m *Manager) Apply(fragmentPath, owner string) error {
	logger := logging.GetLogger("merge.manager")

	raw, err := m.fs.ReadFile(fragmentPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().
				Str("fragment", fragmentPath).
				Str("owner", owner).
				Msg("fragment missing, treating apply as removal")
			return m.Remove(fragmentPath, owner)
		}
		return errors.Wrapf(err, errors.ErrFragmentRead, "failed to read fragment %q for owner %q", fragmentPath, owner).
			WithDetail("fragment", fragmentPath).
			WithDetail("owner", owner)
	}

	return m.ApplyFragment(types.Fragment{Path: fragmentPath, Owner: owner, Text: string(raw)})
}

// ApplyFragment merges an already-read fragment, for callers that
// synthesize fragment text instead of shipping a Podfile on disk.
func (m *Manager) ApplyFragment(frag types.Fragment) error {
	doc, err := m.readManifest()
	if err != nil {
		return err
	}

	result := m.engine.Apply(frag, doc)
	return m.persist(result, frag.Path, frag.Owner)
}

// Remove deletes the owner's contribution from the manifest. A missing
// manifest is a no-op.
func (m *Manager) Remove(fragmentPath, owner string) error {
	logger := logging.GetLogger("merge.manager")

	doc, err := m.readManifest()
	if err != nil {
		return err
	}
	if doc == "" {
		if _, statErr := m.fs.Stat(m.manifestPath); stderrors.Is(statErr, fs.ErrNotExist) {
			logger.Debug().Str("owner", owner).Msg("manifest missing, nothing to remove")
			return nil
		}
	}

	result := m.engine.Remove(owner, doc)
	return m.persist(result, fragmentPath, owner)
}

// Status summarizes each owner's contribution to the current manifest.
func (m *Manager) Status() ([]types.OwnerStatus, error) {
	doc, err := m.readManifest()
	if err != nil {
		return nil, err
	}

	var statuses []types.OwnerStatus
	for _, owner := range fragment.Owners(doc) {
		calls := hooks.CallLinePattern(m.engine.hookName, owner).FindAllString(doc, -1)
		statuses = append(statuses, types.OwnerStatus{
			Owner:       owner,
			HookCalls:   len(calls),
			HasPlatform: platform.HasSection(owner, doc),
		})
	}
	return statuses, nil
}

func (m *Manager) readManifest() (string, error) {
	raw, err := m.fs.ReadFile(m.manifestPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrManifestRead, "failed to read manifest %q", m.manifestPath)
	}
	return string(raw), nil
}

func (m *Manager) persist(result types.MergeResult, fragmentPath, owner string) error {
	logger := logging.GetLogger("merge.manager")

	if !result.Changed {
		return nil
	}

	if result.Delete {
		if err := m.fs.Remove(m.manifestPath); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return errors.Wrapf(err, errors.ErrManifestDelete, "failed to delete manifest %q", m.manifestPath).
				WithDetail("fragment", fragmentPath).
				WithDetail("owner", owner)
		}
		logger.Info().Str("manifest", m.manifestPath).Msg("deleted empty manifest")
		return nil
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.manifestPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to create manifest directory for %q", m.manifestPath).
			WithDetail("fragment", fragmentPath).
			WithDetail("owner", owner)
	}
	if err := m.fs.WriteFile(m.manifestPath, []byte(result.Content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write manifest %q", m.manifestPath).
			WithDetail("fragment", fragmentPath).
			WithDetail("owner", owner)
	}
	return nil
}
