// Package merge orchestrates applying and removing plugin Podfile
// fragments against the shared project manifest. The Engine is a pure
// text transformation; the Manager pairs it with a filesystem to read
// fragments fresh and persist (or delete) the manifest.
package merge

import (
	"strings"

	"github.com/arthur-debert/podmerge/pkg/fragment"
	"github.com/arthur-debert/podmerge/pkg/hooks"
	"github.com/arthur-debert/podmerge/pkg/logging"
	"github.com/arthur-debert/podmerge/pkg/manifest"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// InstallerParamName is the canonical block parameter of the hook
// aggregate header.
const InstallerParamName = "installer"

// Engine performs apply/remove transformations over manifest text. It
// holds no state between calls; every operation is a function of its
// inputs.
type Engine struct {
	projectName string
	hookName    string
	delegate    types.PlatformDelegate
}

// NewEngine creates an engine for the given project. hookName is the
// lifecycle hook aggregated across plugins, normally
// hooks.PostInstallHookName.
func NewEngine(projectName, hookName string, delegate types.PlatformDelegate) *Engine {
	return &Engine{
		projectName: projectName,
		hookName:    hookName,
		delegate:    delegate,
	}
}

// Apply merges a fragment into the manifest document and returns the
// resulting text. Applying the same fragment content twice is a no-op:
// if the document already contains the exact managed block, it is
// returned unchanged. Otherwise any stale contribution from the same
// owner is purged before the fresh block is inserted at the front of
// the body.
func (e *Engine) Apply(frag types.Fragment, doc string) types.MergeResult {
	logger := logging.GetLogger("merge")

	rewritten, functions := hooks.Extract(e.hookName, frag.Text, frag.Owner)
	processed, platformData := e.delegate.ReplaceRow(rewritten, frag.Path, frag.Owner)
	block := fragment.Wrap(frag.Owner, processed)

	if strings.Contains(doc, block) {
		logger.Debug().
			Str("owner", frag.Owner).
			Str("fragment", frag.Path).
			Msg("fragment already applied, nothing to do")
		return types.MergeResult{Content: doc, Changed: false}
	}

	purged := e.purge(frag.Owner, doc)
	inner := manifest.StripWrapper(e.projectName, purged)
	inner = e.renderAggregate(inner, functions)
	inner = e.delegate.AddSection(platformData, inner)

	if inner == "" {
		inner = block
	} else {
		inner = block + "\n" + inner
	}

	content := manifest.Render(e.projectName, inner)

	logger.Info().
		Str("owner", frag.Owner).
		Str("fragment", frag.Path).
		Int("hook_functions", len(functions)).
		Msg("applied fragment to manifest")

	return types.MergeResult{Content: content, Changed: content != doc}
}

// Remove deletes the owner's managed block, its hook call lines, and
// its platform section from the document. When the result collapses to
// a canonical empty template, it signals file deletion instead of a
// write.
func (e *Engine) Remove(owner, doc string) types.MergeResult {
	logger := logging.GetLogger("merge")

	purged := e.purge(owner, doc)

	if manifest.IsEmpty(e.projectName, e.hookName, InstallerParamName, purged) {
		logger.Info().
			Str("owner", owner).
			Msg("manifest empty after removal, deleting file")
		return types.MergeResult{Changed: true, Delete: true}
	}

	logger.Info().
		Str("owner", owner).
		Bool("changed", purged != doc).
		Msg("removed fragment from manifest")

	return types.MergeResult{Content: purged, Changed: purged != doc}
}

// purge strips every trace of an owner from the document: the managed
// block, hook call lines matched by the sanitized-name scheme, and the
// platform section.
func (e *Engine) purge(owner, doc string) string {
	doc = fragment.StripBlock(owner, doc)
	doc = hooks.CallLinePattern(e.hookName, owner).ReplaceAllString(doc, "")
	doc = e.delegate.RemoveSection(owner, doc)
	return e.dropEmptyAggregate(doc)
}

// dropEmptyAggregate removes the aggregate hook block once its last
// call line is gone, so removal leaves no empty hook behind.
func (e *Engine) dropEmptyAggregate(doc string) string {
	calls, stripped, found := e.extractAggregate(doc)
	if !found || len(calls) > 0 {
		return doc
	}
	return stripped
}

// renderAggregate rewrites the single hook aggregate at the end of the
// inner content: call lines already present keep their order, calls for
// newly extracted functions are appended. Plugin-declared hooks were
// rewritten into plain defs by this point, so the only matching header
// left in the document is the aggregate itself.
func (e *Engine) renderAggregate(inner string, functions []types.HookFunction) string {
	existing, stripped, found := e.extractAggregate(inner)
	if !found && len(functions) == 0 {
		return inner
	}

	calls := existing
	for _, fn := range functions {
		call := fn.Name
		if fn.ParamName != "" {
			call += " " + InstallerParamName
		}
		if !containsLine(calls, call) {
			calls = append(calls, call)
		}
	}

	// An aggregate with no calls is noise; drop it entirely.
	if len(calls) == 0 {
		return stripped
	}

	var b strings.Builder
	b.WriteString(e.hookName)
	b.WriteString(" do |")
	b.WriteString(InstallerParamName)
	b.WriteString("|\n")
	for _, call := range calls {
		b.WriteString("  ")
		b.WriteString(call)
		b.WriteString("\n")
	}
	b.WriteString("end")

	if stripped == "" {
		return b.String()
	}
	return stripped + "\n" + b.String()
}

// extractAggregate locates the aggregate hook block, returning its call
// lines and the inner content without it.
func (e *Engine) extractAggregate(inner string) (calls []string, stripped string, found bool) {
	pattern := aggregatePattern(e.hookName)
	match := pattern.FindStringSubmatch(inner)
	if match == nil {
		return nil, inner, false
	}

	for _, line := range strings.Split(match[1], "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			calls = append(calls, line)
		}
	}

	stripped = pattern.ReplaceAllString(inner, "")
	stripped = strings.Trim(stripped, "\r\n")
	return calls, stripped, true
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}
