// Package platform provides the default platform-section delegate. A
// fragment may carry a platform restriction row (e.g. platform :ios,
// '11.0'); that row must not survive verbatim inside a managed block,
// since CocoaPods only honors it at the document level. The delegate
// extracts the row on apply and re-inserts it in an owner-tagged
// section, so it can be removed again when the plugin goes away.
//
// The merge engine only sees the types.PlatformDelegate interface;
// alternative policies (e.g. resolving several plugins' rows down to a
// single highest version) can be plugged in without touching the core.
package platform

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/podmerge/pkg/logging"
	"github.com/arthur-debert/podmerge/pkg/types"
)

const (
	sectionHeaderPrefix = "# Begin Platform Section - "
	sectionFooter       = "# End Platform Section"
)

var platformRow = regexp.MustCompile(`(?m)^[ \t]*platform :[a-z]+(?:[ \t]*,[ \t]*['"][^'"]*['"])?[ \t]*$`)

// Delegate is the default types.PlatformDelegate implementation.
type Delegate struct{}

// NewDelegate creates the default platform delegate.
func NewDelegate() *Delegate {
	return &Delegate{}
}

// SectionHeader returns the begin marker for an owner's platform section.
func SectionHeader(owner string) string {
	return sectionHeaderPrefix + owner
}

// ReplaceRow comments out the first platform row in the fragment and
// captures it for document-level re-insertion. Returns nil data when
// the fragment declares no platform row.
func (d *Delegate) ReplaceRow(fragmentText, fragmentPath, owner string) (string, *types.PlatformData) {
	row := platformRow.FindString(fragmentText)
	if row == "" {
		return fragmentText, nil
	}

	trimmed := strings.TrimSpace(row)
	replaced := strings.Replace(fragmentText, row, "# "+trimmed, 1)

	logger := logging.GetLogger("platform")
	logger.Debug().
		Str("owner", owner).
		Str("row", trimmed).
		Msg("extracted platform row from fragment")

	return replaced, &types.PlatformData{
		Owner: owner,
		Path:  fragmentPath,
		Row:   trimmed,
	}
}

// AddSection prepends the owner-tagged platform section to the inner
// document content.
func (d *Delegate) AddSection(data *types.PlatformData, inner string) string {
	if data == nil {
		return inner
	}
	section := SectionHeader(data.Owner) + "\n" + data.Row + "\n" + sectionFooter
	if inner == "" {
		return section
	}
	return section + "\n" + inner
}

// RemoveSection deletes the owner's platform section, if present. The
// header is anchored to its line end so one owner never matches
// another's section by prefix.
func (d *Delegate) RemoveSection(owner, inner string) string {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(SectionHeader(owner)) + `[ \t]*\r?\n.*?` + regexp.QuoteMeta(sectionFooter) + `\r?\n?`)
	return pattern.ReplaceAllString(inner, "")
}

// HasSection reports whether the document carries a platform section
// for the owner.
func HasSection(owner, doc string) bool {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(SectionHeader(owner)) + `[ \t]*\r?$`).MatchString(doc)
}

var _ types.PlatformDelegate = (*Delegate)(nil)
