package podmerge

// Message constants for the root command
const (
	MsgRootShort = "Merge plugin Podfile fragments into one project Podfile"
	MsgRootLong  = `podmerge maintains a single shared Podfile that independently installed
plugins contribute fragments to. Each plugin's contribution is wrapped in
owner-identified markers so it can be replaced idempotently and removed
cleanly, and plugin post_install hooks are aggregated into one valid hook
without name collisions.`

	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProjectDir = "Project directory (defaults to PODMERGE_PROJECT_DIR, then the working directory)"
)
