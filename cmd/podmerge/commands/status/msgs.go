package status

// Message constants
const (
	MsgShort = "Show which plugins contribute to the project Podfile"
	MsgLong  = `The 'status' command lists every plugin owner with a managed block in the
project Podfile, how many aggregate hook calls it contributes, and whether
it declares a platform section.`

	MsgExample = `  # Human-readable table
  podmerge status

  # Machine-readable output
  podmerge status --format json
  podmerge status --format yaml`

	MsgFlagFormat = "Output format: text, json, or yaml"
)
