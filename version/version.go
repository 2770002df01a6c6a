package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const (
	unknown     = "unknown"
	packageName = "shelltree"
)

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// buildSetting returns a VCS setting recorded by the Go toolchain, or "".
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// GetVersion returns the version string, preferring compile-time version if available
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the git commit hash, preferring compile-time commit if available
func GetCommit() string {
	if Commit != unknown && Commit != "" {
		return Commit
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		return rev
	}
	return unknown
}

// GetBuildDate returns the build date, preferring compile-time date if available
func GetBuildDate() string {
	if Date != unknown && Date != "" {
		return Date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return unknown
}

// GetInfo returns complete version information
func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Package: packageName,
	}
}

// String formats the version with a short commit and the build date when
// they are known.
func (i Info) String() string {
	if i.Commit == unknown || len(i.Commit) <= 7 {
		return i.Version
	}
	if i.Date == unknown {
		return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
}

// GetFullVersion returns a formatted version string with commit and date
func GetFullVersion() string {
	return GetInfo().String()
}
