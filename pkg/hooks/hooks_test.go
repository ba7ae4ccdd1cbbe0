// pkg/hooks/hooks_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test hook extraction and deterministic function naming

package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/podmerge/pkg/hooks"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		expected string
	}{
		{
			name:     "plain_alphanumeric",
			owner:    "camera",
			expected: "camera",
		},
		{
			name:     "dash_becomes_underscore",
			owner:    "my-plugin",
			expected: "my_plugin",
		},
		{
			name:     "underscore_tripled",
			owner:    "my_plugin",
			expected: "my___plugin",
		},
		{
			name:     "scoped_npm_style_name",
			owner:    "@scope/plugin",
			expected: "_scope_plugin",
		},
		{
			name:     "dots_replaced",
			owner:    "org.example.plugin",
			expected: "org_example_plugin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hooks.Sanitize(tt.owner))
		})
	}
}

func TestSanitizeKeepsDistinctOwnersDistinct(t *testing.T) {
	// "a-b" and "a_b" must not collapse to the same function prefix
	assert.NotEqual(t, hooks.Sanitize("a-b"), hooks.Sanitize("a_b"))
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "post_installa_0", hooks.FuncName("post_install", "a", 0))
	assert.Equal(t, "post_installmy_plugin_2", hooks.FuncName("post_install", "my-plugin", 2))
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name           string
		fragment       string
		owner          string
		expectedText   string
		expectedFuncs  int
		expectedParams []string
	}{
		{
			name:           "hook_with_parameter",
			fragment:       "post_install do |installer|\n  puts \"a\"\nend",
			owner:          "a",
			expectedText:   "def post_installa_0 (installer)\n  puts \"a\"\nend",
			expectedFuncs:  1,
			expectedParams: []string{"installer"},
		},
		{
			name:           "hook_without_parameter",
			fragment:       "post_install do\n  puts \"x\"\nend",
			owner:          "a",
			expectedText:   "def post_installa_0\n  puts \"x\"\nend",
			expectedFuncs:  1,
			expectedParams: []string{""},
		},
		{
			name:           "two_hooks_in_one_fragment",
			fragment:       "post_install do |i|\n  one\nend\npost_install do |j|\n  two\nend",
			owner:          "b",
			expectedText:   "def post_installb_0 (i)\n  one\nend\ndef post_installb_1 (j)\n  two\nend",
			expectedFuncs:  2,
			expectedParams: []string{"i", "j"},
		},
		{
			name:           "no_hook_passes_through",
			fragment:       "pod 'AFNetworking', '~> 3.0'\n",
			owner:          "a",
			expectedText:   "pod 'AFNetworking', '~> 3.0'\n",
			expectedFuncs:  0,
			expectedParams: nil,
		},
		{
			name:           "malformed_hook_passes_through",
			fragment:       "post_install begin\n  nope\nend",
			owner:          "a",
			expectedText:   "post_install begin\n  nope\nend",
			expectedFuncs:  0,
			expectedParams: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewritten, funcs := hooks.Extract("post_install", tt.fragment, tt.owner)
			assert.Equal(t, tt.expectedText, rewritten)
			assert.Len(t, funcs, tt.expectedFuncs)
			for i, fn := range funcs {
				assert.Equal(t, tt.expectedParams[i], fn.ParamName)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	fragment := "post_install do |installer|\n  puts \"a\"\nend"

	text1, funcs1 := hooks.Extract("post_install", fragment, "a")
	text2, funcs2 := hooks.Extract("post_install", fragment, "a")

	assert.Equal(t, text1, text2)
	assert.Equal(t, funcs1, funcs2)
}

func TestCallLinePattern(t *testing.T) {
	doc := "post_install do |installer|\n" +
		"  post_installa_0 installer\n" +
		"  post_installa_3\n" +
		"  post_installab_0 installer\n" +
		"end"

	cleaned := hooks.CallLinePattern("post_install", "a").ReplaceAllString(doc, "")

	// Both of a's call lines go, including the stale variant, but ab's
	// line survives.
	assert.NotContains(t, cleaned, "post_installa_0")
	assert.NotContains(t, cleaned, "post_installa_3")
	assert.Contains(t, cleaned, "post_installab_0 installer")
}
