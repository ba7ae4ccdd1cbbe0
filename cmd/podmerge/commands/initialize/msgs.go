package initialize

// Message constants
const (
	MsgShort = "Write a starter .podmerge.toml for the project"
	MsgLong  = `The 'init' command writes a starter .podmerge.toml into the project
directory with the default settings spelled out, ready to edit.`

	MsgExample = `  # Create .podmerge.toml in the current project
  podmerge init

  # Overwrite an existing configuration
  podmerge init --force`

	MsgFlagForce = "Overwrite an existing .podmerge.toml"
)
