package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/podmerge/pkg/platform"
)

func TestReplaceRow(t *testing.T) {
	delegate := platform.NewDelegate()

	tests := []struct {
		name        string
		fragment    string
		expectData  bool
		expectedRow string
	}{
		{
			name:        "ios_with_version",
			fragment:    "platform :ios, '11.0'\npod 'X'\n",
			expectData:  true,
			expectedRow: "platform :ios, '11.0'",
		},
		{
			name:        "ios_without_version",
			fragment:    "platform :ios\npod 'X'\n",
			expectData:  true,
			expectedRow: "platform :ios",
		},
		{
			name:        "indented_row",
			fragment:    "  platform :osx, \"10.13\"\npod 'X'\n",
			expectData:  true,
			expectedRow: "platform :osx, \"10.13\"",
		},
		{
			name:       "no_platform_row",
			fragment:   "pod 'X'\n",
			expectData: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replaced, data := delegate.ReplaceRow(tt.fragment, "plugins/a/Podfile", "a")

			if !tt.expectData {
				assert.Nil(t, data)
				assert.Equal(t, tt.fragment, replaced)
				return
			}

			require.NotNil(t, data)
			assert.Equal(t, "a", data.Owner)
			assert.Equal(t, tt.expectedRow, data.Row)
			// The row survives in the fragment only as a comment.
			assert.Contains(t, replaced, "# "+tt.expectedRow)
			assert.Contains(t, replaced, "pod 'X'")
		})
	}
}

func TestAddAndRemoveSection(t *testing.T) {
	delegate := platform.NewDelegate()

	_, data := delegate.ReplaceRow("platform :ios, '11.0'\npod 'X'\n", "plugins/a/Podfile", "a")
	inner := delegate.AddSection(data, "pod 'Other'")

	assert.Contains(t, inner, platform.SectionHeader("a"))
	assert.Contains(t, inner, "platform :ios, '11.0'")
	assert.True(t, platform.HasSection("a", inner))

	removed := delegate.RemoveSection("a", inner)
	assert.Equal(t, "pod 'Other'", removed)
	assert.False(t, platform.HasSection("a", removed))
}

func TestAddSectionNilData(t *testing.T) {
	delegate := platform.NewDelegate()
	assert.Equal(t, "pod 'X'", delegate.AddSection(nil, "pod 'X'"))
}

func TestRemoveSectionOwnerIsNotAPrefixMatch(t *testing.T) {
	delegate := platform.NewDelegate()

	_, data := delegate.ReplaceRow("platform :ios, '9.0'\n", "plugins/ab/Podfile", "ab")
	inner := delegate.AddSection(data, "")

	assert.Equal(t, inner, delegate.RemoveSection("a", inner))
	assert.False(t, platform.HasSection("a", inner))
	assert.True(t, platform.HasSection("ab", inner))
}
