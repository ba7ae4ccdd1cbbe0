package remove

// Message constants
const (
	MsgShort = "Remove a plugin's contribution from the project Podfile"
	MsgLong  = `The 'remove' command deletes exactly one plugin's contribution from the
shared project Podfile: its managed block, its hook call lines, and its
platform section. Other plugins' contributions are untouched.

If nothing remains but the empty project template afterwards, the Podfile is
deleted instead of rewritten.`

	MsgExample = `  # Remove the camera plugin's contribution
  podmerge remove camera`

	MsgFlagFragment = "Path of the plugin's fragment (informational, used in error reporting)"
)
