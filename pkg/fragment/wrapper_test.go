package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/podmerge/pkg/fragment"
)

func TestMarkers(t *testing.T) {
	assert.Equal(t, "# Begin Podfile - camera", fragment.HeaderMarker("camera"))
	assert.Equal(t, "# End Podfile", fragment.FooterMarker())
}

func TestWrap(t *testing.T) {
	block := fragment.Wrap("a", "pod 'X'")
	assert.Equal(t, "# Begin Podfile - a\npod 'X'\n# End Podfile", block)
}

func TestStripBlock(t *testing.T) {
	blockA := fragment.Wrap("a", "pod 'A'")
	blockB := fragment.Wrap("b", "pod 'B'")
	doc := blockA + "\n" + blockB + "\n"

	stripped := fragment.StripBlock("a", doc)

	assert.NotContains(t, stripped, "pod 'A'")
	assert.Contains(t, stripped, "pod 'B'")
	assert.Contains(t, stripped, fragment.HeaderMarker("b"))
}

func TestStripBlockIgnoresContent(t *testing.T) {
	// Removal is keyed by markers alone: user edits inside the block do
	// not prevent its removal.
	doc := fragment.Wrap("a", "anything the user\ntyped in here\nend\nend") + "\n"

	assert.Equal(t, "", fragment.StripBlock("a", doc))
}

func TestStripBlockOwnerIsNotAPrefixMatch(t *testing.T) {
	doc := fragment.Wrap("ab", "pod 'AB'") + "\n"

	// Owner "a" must not swallow owner "ab"'s block.
	assert.Equal(t, doc, fragment.StripBlock("a", doc))
}

func TestOwners(t *testing.T) {
	doc := fragment.Wrap("b", "pod 'B'") + "\n" + fragment.Wrap("a", "pod 'A'")

	assert.Equal(t, []string{"b", "a"}, fragment.Owners(doc))
	assert.Nil(t, fragment.Owners("no blocks here"))
}

func TestContains(t *testing.T) {
	doc := fragment.Wrap("ab", "pod 'AB'")

	assert.True(t, fragment.Contains("ab", doc))
	assert.False(t, fragment.Contains("a", doc))
}
