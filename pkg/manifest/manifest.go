// Package manifest holds the project Podfile document model: the
// per-project header/footer wrapper and the canonical empty renderings
// used to decide when the file has become redundant and should be
// deleted rather than written.
package manifest

import (
	"fmt"
	"strings"
)

// DefaultFileName is the standard name of the project manifest.
const DefaultFileName = "Podfile"

// HeaderFor returns the default per-project header the merged document
// opens with.
func HeaderFor(projectName string) string {
	return fmt.Sprintf("use_frameworks!\n\ntarget \"%s\" do", projectName)
}

// Footer returns the default per-project footer.
func Footer() string {
	return "end"
}

// Render wraps inner content in the project header and footer.
func Render(projectName, inner string) string {
	header := HeaderFor(projectName)
	if inner == "" {
		return header + "\n" + Footer()
	}
	return header + "\n" + inner + "\n" + Footer()
}

// StripWrapper removes the project header and footer from a rendered
// document, returning the inner content. Content outside the wrapper is
// left alone, so user edits above the header survive a re-render only
// if the document was produced by Render; that limitation is accepted.
func StripWrapper(projectName, doc string) string {
	inner := doc
	header := HeaderFor(projectName)
	if idx := strings.Index(inner, header); idx >= 0 {
		inner = inner[idx+len(header):]
	}
	inner = strings.TrimRight(inner, " \t\r\n")
	// The footer is only a footer when it sits on its own line.
	if inner == Footer() {
		inner = ""
	} else if strings.HasSuffix(inner, "\n"+Footer()) {
		inner = inner[:len(inner)-len(Footer())-1]
	}
	return strings.Trim(inner, "\r\n")
}

// EmptyTemplate is the canonical rendering of a project manifest with
// no plugin contributions and no hook header.
func EmptyTemplate(projectName string) string {
	return Render(projectName, "")
}

// EmptyTemplateWithHook is the canonical rendering with an empty hook
// aggregate: what a manifest looks like after the last hook-contributing
// plugin's calls have been removed.
func EmptyTemplateWithHook(projectName, hookName, paramName string) string {
	hook := fmt.Sprintf("%s do |%s|\nend", hookName, paramName)
	return Render(projectName, hook)
}

// normalize reduces a document to its significant lines: trailing
// whitespace stripped, blank lines dropped. Whitespace-only differences
// must not keep a redundant manifest alive.
func normalize(doc string) string {
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// IsEmpty reports whether the document is textually equal, modulo
// whitespace, to one of the two canonical empty templates.
func IsEmpty(projectName, hookName, paramName, doc string) bool {
	n := normalize(doc)
	return n == normalize(EmptyTemplate(projectName)) ||
		n == normalize(EmptyTemplateWithHook(projectName, hookName, paramName))
}
