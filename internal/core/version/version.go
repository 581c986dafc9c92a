// Package version reports build information stamped at link time
package version

import (
	"runtime/debug"
)

// Service is the name reported by every binary in this module
const Service = "authorcheck"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// set with -ldflags "-X 'authorcheck/internal/core/version.version=v0.1.0'
// -X 'authorcheck/internal/core/version.commit=abcd' -X 'authorcheck/internal/core/version.date=2026-10-14'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information, falling back to VCS settings embedded by the go tool
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		}
	}
	return bi
}

// String is the short form used in logs and the CLI
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ")"
}
