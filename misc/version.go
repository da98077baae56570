// Package misc keeps small helpers which do not belong anywhere else.
package misc

import (
	"runtime/debug"
)

// Set at build time via -ldflags, see Taskfile.
var (
	appName = "inikit"
	version = "development"
)

// GetAppName returns short program name to be used in logs and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns vcs revision program was built from if known.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
