package apply

// Message constants
const (
	MsgShort = "Merge a plugin's Podfile fragment into the project Podfile"
	MsgLong  = `The 'apply' command merges one plugin's Podfile fragment into the shared
project Podfile. The contribution is wrapped in owner-identified markers,
post_install hooks are renamed into uniquely-named functions wired into the
aggregate post_install block, and any platform row is lifted to the document
level.

Applying the same fragment content twice is a no-op. Applying changed content
replaces the previous contribution in place. If the fragment file is missing,
apply behaves as a removal.`

	MsgExample = `  # Apply a fragment, owner derived from the containing directory
  podmerge apply plugins/camera/Podfile

  # Apply with an explicit owner id
  podmerge apply plugins/camera/Podfile --owner camera

  # Apply a plugin through its plugin.xml manifest
  podmerge apply --plugin plugins/camera`

	MsgFlagOwner  = "Owner id for the fragment (defaults to the fragment's directory name)"
	MsgFlagPlugin = "Plugin directory; its plugin.xml determines owner and fragment"
)
