// Package version holds the build stamp injected with ldflags.
package version

import (
	"fmt"
	"runtime"
)

// These are set via ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the stamp of this binary.
func Current() Build {
	return Build{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ShortCommit returns the first seven characters of the commit.
func (b Build) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}

func (b Build) String() string {
	return fmt.Sprintf("skillmatrix %s (%s) built on %s with %s",
		b.Version, b.ShortCommit(), b.BuildDate, b.GoVersion)
}

// Short returns just the version number.
func Short() string {
	return Version
}
