// Package fragment wraps processed Podfile fragments in machine-readable
// begin/end markers. The markers are a deterministic function of the
// owner id, so a block can always be re-located and removed by identity
// alone, independent of whatever its content has become.
package fragment

import (
	"regexp"
	"strings"
)

const (
	headerMarkerPrefix = "# Begin Podfile - "
	footerMarker       = "# End Podfile"
)

// HeaderMarker returns the begin marker for an owner's managed block.
func HeaderMarker(owner string) string {
	return headerMarkerPrefix + owner
}

// FooterMarker returns the end marker shared by all managed blocks.
func FooterMarker() string {
	return footerMarker
}

// Wrap produces the managed block for an owner's processed fragment.
func Wrap(owner, text string) string {
	return HeaderMarker(owner) + "\n" + text + "\n" + footerMarker
}

// BlockPattern matches exactly one owner's managed block, regardless of
// its current content. Non-greedy so adjacent blocks are untouched. The
// header marker is anchored to its line end so owner "a" never matches
// owner "ab"'s block.
func BlockPattern(owner string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(HeaderMarker(owner)) + `[ \t]*\r?\n.*?` + regexp.QuoteMeta(footerMarker) + `\r?\n?`)
}

// StripBlock removes the owner's managed block from the document, if
// present.
func StripBlock(owner, doc string) string {
	return BlockPattern(owner).ReplaceAllString(doc, "")
}

// Contains reports whether the document holds a managed block for owner.
func Contains(owner, doc string) bool {
	return regexp.MustCompile(`(?m)^`+regexp.QuoteMeta(HeaderMarker(owner))+`[ \t]*\r?$`).MatchString(doc)
}

var headerLine = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(headerMarkerPrefix) + `(.*)$`)

// Owners lists the owner ids of all managed blocks in the document, in
// order of appearance.
func Owners(doc string) []string {
	var owners []string
	for _, m := range headerLine.FindAllStringSubmatch(doc, -1) {
		owners = append(owners, strings.TrimRight(m[1], "\r"))
	}
	return owners
}
