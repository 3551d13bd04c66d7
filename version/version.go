package version

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"
)

var (
	// Set at build time via -ldflags.
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// GetBuildInfoImpl is the injectable implementation behind GetBuildInfo,
// overridable in tests.
var GetBuildInfoImpl = func() (string, string, string) {
	version := Version
	commitHash := CommitHash
	buildDate := BuildDate

	if version == "dev" || version == "unknown" ||
		commitHash == "unknown" || buildDate == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if (version == "dev" || version == "unknown") && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = strings.TrimPrefix(info.Main.Version, "v")
			}
			if (commitHash == "unknown" || len(commitHash) < 7) && info.Main.Version != "" {
				parts := strings.Split(info.Main.Version, "-")
				if len(parts) >= 3 {
					possibleCommit := parts[len(parts)-1]
					if len(possibleCommit) >= 7 {
						commitHash = possibleCommit
					}
				}
			}
			if buildDate == "unknown" {
				for _, setting := range info.Settings {
					if setting.Key == "vcs.time" {
						if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
							buildDate = t.Format("2006-01-02 15:04:05")
						} else {
							buildDate = setting.Value
						}
					}
				}
			}
		}
	}
	if buildDate == "unknown" {
		if execPath, err := os.Executable(); err == nil {
			if info, err := os.Stat(execPath); err == nil {
				buildDate = fmt.Sprintf("%s (from binary mtime)", info.ModTime().Format("2006-01-02 15:04:05"))
			}
		}
	}
	return version, commitHash, buildDate
}

// GetBuildInfo returns the resolved version, commit hash, and build
// date, falling back to Go module build info when ldflags were not
// set.
func GetBuildInfo() (string, string, string) {
	return GetBuildInfoImpl()
}

// Info bundles the three fields returned by GetBuildInfo.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Current returns the current build's version information.
func Current() Info {
	v, c, b := GetBuildInfo()
	return Info{Version: v, CommitHash: c, BuildDate: b}
}
