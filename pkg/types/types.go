// Package types defines the shared data model for podmerge: fragments,
// hook functions, platform data, and the collaborator interfaces the
// merge engine depends on.
package types

// Fragment is a plugin-supplied Podfile snippet. It is read fresh from
// disk on every apply; nothing about it is cached between calls.
type Fragment struct {
	// Path is the location the fragment was read from.
	Path string

	// Owner identifies the contributing plugin. Markers and hook
	// function names are derived from it.
	Owner string

	// Text is the raw fragment content.
	Text string
}

// HookFunction describes one lifecycle hook extracted from a fragment
// and renamed into a standalone function.
type HookFunction struct {
	// Name is the generated function name. It is a pure function of
	// (hook name, sanitized owner, index) so re-processing the same
	// fragment yields the same names.
	Name string

	// ParamName is the hook's block parameter, empty when the hook
	// was declared without one.
	ParamName string
}

// PlatformData carries a platform-restriction row extracted from a
// fragment. The merge engine treats it as opaque; only the platform
// delegate interprets it.
type PlatformData struct {
	Owner string
	Path  string
	Row   string
}

// MergeResult is the outcome of an apply or remove over the project
// manifest text.
type MergeResult struct {
	// Content is the new manifest text. Meaningless when Delete is set.
	Content string

	// Changed reports whether Content differs from the input document.
	Changed bool

	// Delete indicates the manifest collapsed to an empty template and
	// the backing file should be removed instead of written.
	Delete bool
}

// OwnerStatus summarizes one plugin's contribution to the manifest,
// used by the status command.
type OwnerStatus struct {
	Owner       string `json:"owner" yaml:"owner"`
	HookCalls   int    `json:"hookCalls" yaml:"hookCalls"`
	HasPlatform bool   `json:"hasPlatform" yaml:"hasPlatform"`
}
