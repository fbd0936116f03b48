// Package version provides build-time metadata for the cpucache CLI.
//
// The variables can be overridden at build time using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/cpucache/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/cpucache/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'" \
//	  ./cmd/cpucache
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// unset is the placeholder Version carries when no -ldflags were supplied.
const unset = "0.0.0"

var (
	// Version is the current version of the application
	Version = unset

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""

	// GoVersion is the version of Go used to build the application
	GoVersion = runtime.Version()
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns a one-line version string for app. When the binary was built
// without -ldflags, the module version recorded by `go install` is used.
func Short(app string) string {
	if Version == unset {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" {
			return fmt.Sprintf("%s version: %s", app, info.Main.Version)
		}
	}

	return fmt.Sprintf("%s version: %s", app, Version)
}

// Long returns the detailed, single-line build description for app.
func Long(app string) string {
	var sb strings.Builder

	if Version == unset {
		if info, ok := readBuildInfo(); ok {
			fmt.Fprintf(&sb, "%s version: %s, ", app, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", app, Version)
	fmt.Fprintf(&sb, "Build date: %s, ", BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", GitBranch)
	fmt.Fprintf(&sb, "Go version: %s", GoVersion)

	return sb.String()
}
