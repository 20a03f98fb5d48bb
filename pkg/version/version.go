// Package version carries build metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/zoro11031/finder-sidebar/pkg/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release this binary was built from
	Version = "0.1.0-dev"

	// GitCommit is the source revision (set during build)
	GitCommit = "unknown"

	// BuildDate is the build timestamp (set during build)
	BuildDate = "unknown"
)

// Info returns the line printed by the version command
func Info() string {
	return fmt.Sprintf("finder-sidebar %s (commit %s, built %s, %s/%s)",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number
func Short() string {
	return Version
}
