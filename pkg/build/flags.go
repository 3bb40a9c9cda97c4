// SPDX-License-Identifier: MIT
//
// Package build holds the metadata stamped into the bithacks binary at link
// time. Values are injected with -ldflags, for example:
//
//	go build -ldflags "-X bithacks/pkg/build.buildName=bithacks \
//	    -X bithacks/pkg/build.buildVersion=0.3.0 ..."
//
// The description is optional; name, time, commit and version are required
// for a release build.
package build

import "fmt"

type ldFlags struct {
	Name        string
	Description string
	Time        string
	Commit      string
	Version     string
}

const defaultDescription = "Evaluate and explore classic bit twiddling hacks"

// Package-level variables for build information. These are populated by -ldflags
// during compilation. Development builds keep the "dev"/"unknown" defaults.
var (
	buildName        string
	buildDescription string
	buildTime        string
	buildCommit      string
	buildVersion     string
	buildFlags       = &ldFlags{
		Name:        "bithacks",
		Description: defaultDescription,
		Time:        "unknown",
		Commit:      "unknown",
		Version:     "dev",
	}
)

// Initialize validates and copies build information from ldflags variables
// into the buildFlags struct. On error the development defaults stay in
// place, so callers may log the error and carry on.
func Initialize() error {
	if buildName == "" {
		return fmt.Errorf("BuildName is required")
	}
	if buildTime == "" {
		return fmt.Errorf("BuildTime is required")
	}
	if buildCommit == "" {
		return fmt.Errorf("BuildCommit is required")
	}
	if buildVersion == "" {
		return fmt.Errorf("BuildVersion is required")
	}

	buildFlags.Name = buildName
	buildFlags.Time = buildTime
	buildFlags.Commit = buildCommit
	buildFlags.Version = buildVersion
	if buildDescription != "" {
		buildFlags.Description = buildDescription
	}

	return nil
}

// GetBuildFlags returns the current build information.
func GetBuildFlags() *ldFlags {
	return buildFlags
}

// String renders the metadata on one line for the version command.
func (f *ldFlags) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", f.Name, f.Version, f.Commit, f.Time)
}
