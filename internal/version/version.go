// Package version holds build identification for quillboot.
package version

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/quill-os/quillboot/internal/version.Version=v1.2.3 \
//	                   -X github.com/quill-os/quillboot/internal/version.Commit=abc123"
//
// If not set, they are populated from Go build info at runtime (if available),
// or fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of quillboot
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

// KernelCommitFile is where the initramfs build records the kernel commit.
const KernelCommitFile = "/.commit"

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// populateFromBuildInfo attempts to read version info from Go's build info,
// which includes VCS information when built from a git checkout.
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision, vcsModified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && vcsRevision != "" {
		// Use short hash (first 7 characters)
		if len(vcsRevision) > 7 {
			Commit = vcsRevision[:7]
		} else {
			Commit = vcsRevision
		}
		if vcsModified == "true" {
			Commit += "-dirty"
		}
	}

	// Build info carries no git tags, so derive a dev version from the
	// commit time when we have one.
	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Short returns the version without commit information, for the main menu
// banner where space is limited.
func Short() string {
	return Version
}

// KernelCommit reads the kernel commit recorded by the initramfs build.
// Returns "unknown" when the file is missing, which is the case on
// development hosts.
func KernelCommit() string {
	data, err := os.ReadFile(KernelCommitFile)
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(data))
}
