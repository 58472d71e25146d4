package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/flatform/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/flatform/internal/version.Commit=abc123"
//
// Otherwise they are filled from VCS build info, or "dev" with a timestamp.
var (
	// Version is the semantic version of the demo
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			Version, Commit = fromSettings(Version, Commit, info.Settings)
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromSettings fills empty version/commit values from VCS build settings
func fromSettings(version, commit string, settings []debug.BuildSetting) (string, string) {
	var revision, modified, vcsTime string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		commit = revision
		if modified == "true" {
			commit += "-dirty"
		}
	}

	// no tags in build info, so date the dev build by its commit
	if version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}

	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// IsDev reports whether this is an untagged development build
func IsDev() bool {
	return strings.HasPrefix(Version, "dev-")
}
