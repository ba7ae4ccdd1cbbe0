package types

import "io/fs"

// FS abstracts the filesystem operations podmerge needs so the merge
// manager can run against the real OS or an in-memory filesystem in
// tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}

// PlatformDelegate manages the platform-restriction row a fragment may
// declare. It is pluggable: the merge engine only ever sees this
// interface and never interprets the row itself.
type PlatformDelegate interface {
	// ReplaceRow extracts the platform row from a fragment's text,
	// returning the fragment with the row neutralized plus the data
	// needed to re-insert it at the document level. The returned data
	// is nil when the fragment declares no platform row.
	ReplaceRow(fragmentText, fragmentPath, owner string) (string, *PlatformData)

	// AddSection inserts the previously extracted row into the inner
	// document content. A nil data is a no-op.
	AddSection(data *PlatformData, inner string) string

	// RemoveSection deletes the owner's platform section from the
	// inner document content, if present.
	RemoveSection(owner, inner string) string
}
