// Package xcconfig merges linker-configuration key/value files
// (.xcconfig). This is glue around the core merge engine: plugins may
// ship build settings next to their Podfile fragment, and those get
// folded into one project-level file during install.
//
// The format handled is the simple subset plugins actually use: one
// `KEY = value` per line, `//` comments, blank lines. Conditional
// settings like KEY[arch=*] pass through as opaque keys.
package xcconfig

import (
	"strings"
)

// inherited is the marker CocoaPods uses to chain build settings.
const inherited = "$(inherited)"

// listKeys are settings whose values are token lists and merge by
// union rather than by replacement.
var listKeys = map[string]bool{
	"OTHER_LDFLAGS":                true,
	"OTHER_CFLAGS":                 true,
	"OTHER_SWIFT_FLAGS":            true,
	"HEADER_SEARCH_PATHS":          true,
	"LIBRARY_SEARCH_PATHS":         true,
	"FRAMEWORK_SEARCH_PATHS":       true,
	"GCC_PREPROCESSOR_DEFINITIONS": true,
}

// Entry is a single setting, order-preserving.
type Entry struct {
	Key   string
	Value string
}

// Parse reads entries from xcconfig text, skipping comments and blank
// lines. Lines without an = are ignored; there is nothing useful to do
// with them and failing would break on hand-edited files.
func Parse(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return entries
}

// Render writes entries back out, one per line.
func Render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteString(" = ")
		b.WriteString(e.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// Merge folds overlay settings into base. List-like keys (and any value
// carrying $(inherited)) merge by token union with $(inherited) kept
// first; scalar keys are replaced, last writer wins. Base order is
// preserved; new keys append in overlay order.
func Merge(base, overlay string) string {
	baseEntries := Parse(base)
	index := make(map[string]int, len(baseEntries))
	for i, e := range baseEntries {
		index[e.Key] = i
	}

	for _, e := range Parse(overlay) {
		i, exists := index[e.Key]
		if !exists {
			index[e.Key] = len(baseEntries)
			baseEntries = append(baseEntries, e)
			continue
		}
		if listKeys[e.Key] || strings.Contains(baseEntries[i].Value, inherited) || strings.Contains(e.Value, inherited) {
			baseEntries[i].Value = mergeTokens(baseEntries[i].Value, e.Value)
		} else {
			baseEntries[i].Value = e.Value
		}
	}

	return Render(baseEntries)
}

// mergeTokens unions two space-separated token lists, deduplicated,
// with $(inherited) first when either side carries it.
func mergeTokens(a, b string) string {
	seen := make(map[string]bool)
	var tokens []string
	hasInherited := false

	for _, tok := range append(strings.Fields(a), strings.Fields(b)...) {
		if tok == inherited {
			hasInherited = true
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	if hasInherited {
		tokens = append([]string{inherited}, tokens...)
	}
	return strings.Join(tokens, " ")
}
