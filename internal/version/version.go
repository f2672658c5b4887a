// Package version carries build metadata for the datagen binary. The values
// are set at link time:
//
//	go build -ldflags "-X github.com/DaneLin/XRVis/internal/version.Version=v1.2.0" ./cmd/datagen
package version

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// GitSHA is the commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is the link timestamp.
	BuildTime = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("datagen %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
