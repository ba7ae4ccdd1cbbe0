// Package hooks rewrites lifecycle hook blocks inside Podfile fragments.
//
// A plugin fragment may declare a hook such as
//
//	post_install do |installer|
//	  ...
//	end
//
// but only one such block may exist in the merged project Podfile. This
// package renames each hook declaration into a standalone function with
// a deterministic, owner-derived name, so the merge engine can later
// aggregate all extracted functions under a single hook header.
package hooks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/podmerge/pkg/logging"
	"github.com/arthur-debert/podmerge/pkg/types"
)

// PostInstallHookName is the hook podmerge aggregates by default.
const PostInstallHookName = "post_install"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Sanitize maps an owner id onto the characters allowed in a function
// name. Underscores are tripled before the general substitution so two
// differently punctuated owners ("my-plugin" vs "my_plugin") do not
// collapse to the same name in the common case. An owner literally
// spelled with the substituted form can still collide; downstream
// behavior on collision is unspecified and deliberately left alone.
func Sanitize(owner string) string {
	escaped := strings.ReplaceAll(owner, "_", "___")
	return unsafeChars.ReplaceAllString(escaped, "_")
}

// BasicFuncName is the per-owner prefix shared by all function names
// generated for a hook. The removal regexes match on this prefix, not
// on exact names, so stale variants are cleaned up too.
func BasicFuncName(hookName, owner string) string {
	return hookName + Sanitize(owner)
}

// FuncName returns the generated function name for the index-th hook
// occurrence within one fragment.
func FuncName(hookName, owner string, index int) string {
	return fmt.Sprintf("%s_%d", BasicFuncName(hookName, owner), index)
}

// declPattern matches a hook opening line: the hook name, "do", and an
// optional single block parameter in pipes.
func declPattern(hookName string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(hookName) + ` do *(\|(\w+)\|)?`)
}

// CallLinePattern matches the aggregate call lines previously generated
// for an owner's hook functions, keyed by the sanitized-name scheme.
func CallLinePattern(hookName, owner string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(BasicFuncName(hookName, owner)) + `_\d+.*$\r?\n?`)
}

// Extract scans fragmentText for hook declarations and rewrites each
// into a plain function definition, in order of appearance. The block
// body and its closing end are left untouched. If the pattern never
// matches, the text passes through unchanged and no functions are
// returned: a malformed hook is silently not wired into the aggregate.
func Extract(hookName, fragmentText, owner string) (string, []types.HookFunction) {
	logger := logging.GetLogger("hooks")

	pattern := declPattern(hookName)
	var functions []types.HookFunction

	index := 0
	rewritten := pattern.ReplaceAllStringFunc(fragmentText, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		param := sub[2]

		name := FuncName(hookName, owner, index)
		index++

		functions = append(functions, types.HookFunction{Name: name, ParamName: param})

		if param != "" {
			return fmt.Sprintf("def %s (%s)", name, param)
		}
		return "def " + name
	})

	if len(functions) == 0 {
		logger.Debug().
			Str("hook", hookName).
			Str("owner", owner).
			Msg("no hook declarations found in fragment")
	} else {
		logger.Debug().
			Str("hook", hookName).
			Str("owner", owner).
			Int("count", len(functions)).
			Msg("extracted hook functions")
	}

	return rewritten, functions
}
