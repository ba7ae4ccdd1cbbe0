package install

// Message constants
const (
	MsgShort = "Merge all installed plugins and run pod install"
	MsgLong  = `The 'install' command discovers every plugin under the plugins directory,
merges each one's Podfile fragment into the project Podfile, folds plugin
build.xcconfig files into Plugins.xcconfig, and finally runs the external
pod binary against the project.

Use --no-pod to only merge, without invoking CocoaPods.`

	MsgExample = `  # Merge all plugins and run pod install
  podmerge install

  # Merge only, skip CocoaPods
  podmerge install --no-pod`

	MsgFlagNoPod = "Skip running the pod binary after merging"
)
