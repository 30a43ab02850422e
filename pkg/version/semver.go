package version

import (
	"github.com/Masterminds/semver/v3"
)

// Channel classifies a build by its version string.
type Channel string

const (
	ChannelDev        Channel = "dev"
	ChannelPrerelease Channel = "prerelease"
	ChannelStable     Channel = "stable"
)

// Semver parses the build version. Nil for dev builds.
func (b Build) Semver() *semver.Version {
	v, err := semver.NewVersion(b.Version)
	if err != nil {
		return nil
	}
	return v
}

// Channel reports dev for unparseable versions.
func (b Build) Channel() Channel {
	v := b.Semver()
	switch {
	case v == nil:
		return ChannelDev
	case v.Prerelease() != "":
		return ChannelPrerelease
	default:
		return ChannelStable
	}
}

// Satisfies checks the build against a constraint such as ">= 1.2".
// Dev builds satisfy every constraint.
func (b Build) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	v := b.Semver()
	if v == nil {
		return true, nil
	}
	return c.Check(v), nil
}

// IsDevBuild reports whether the running binary has no release version.
func IsDevBuild() bool {
	return Current().Channel() == ChannelDev
}
