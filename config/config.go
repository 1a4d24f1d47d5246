package config

// Version is the release version stamped in at build time, falling back
// to a dev placeholder when built outside the release pipeline.
var Version = "0.0.0-dev"

func SetVersion(version string) {
	if version == "" {
		return
	}
	Version = version
}
