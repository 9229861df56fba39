// Package version reports the build version of ileap. Release builds set
// the version with
//
//	-ldflags "-X github.com/rshade/ileap/pkg/version.version=1.2.3"
package version

import "github.com/Masterminds/semver/v3"

const devVersion = "0.0.0-dev"

//nolint:gochecknoglobals // set at link time
var (
	version = devVersion
	commit  = "unknown"
)

// GetVersion returns the build version without a leading "v". A value that
// is not a semantic version falls back to the development version.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return devVersion
	}
	return v.String()
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string { return commit }

// IsDev reports whether this is a development build.
func IsDev() bool {
	v, err := semver.NewVersion(GetVersion())
	return err != nil || v.Prerelease() == "dev"
}
