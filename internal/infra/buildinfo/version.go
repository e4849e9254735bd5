package buildinfo

import "runtime/debug"

// Build-time variables (set via ldflags).
var (
	// Version is the release version.
	Version = "0.1"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"

	// GoVersion is the Go version used to build.
	GoVersion = "unknown"
)

// Info contains build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
	}
	if info.GoVersion == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
	}
	return info
}

// Banner returns the line printed by fsm --version.
func Banner() string {
	return "Firefox Session Manager v" + Version
}

// String returns a formatted version string.
func String() string {
	info := Get()
	return info.Version + " (" + info.Commit + ") built at " + info.BuildTime + " with " + info.GoVersion
}
