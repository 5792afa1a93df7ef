package fetcher

import (
	"os"
	"path/filepath"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/binfetch/pkg/fsutil"
)

// markerName is the file recording which version tag was last extracted into
// a target directory.
const markerName = ".binfetch-version"

// readMarker returns the recorded version tag, or "" when the marker is
// absent or unreadable.
func readMarker(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, markerName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// writeMarker records the version tag that was just extracted.
func writeMarker(dir, tag string) error {
	return os.WriteFile(filepath.Join(dir, markerName), []byte(tag+"\n"), fsutil.FileModeDefault)
}

// markerSatisfies reports whether the installed tag satisfies the requested
// one. Presence of the probe file is the primary signal; the marker only
// forces a refetch when both tags parse as versions and the installed one is
// older. Non-semver tags (plain platform tags like "ios") never force one.
func markerSatisfies(installed, requested string) bool {
	if installed == "" {
		return true
	}
	iv, err := version.NewVersion(installed)
	if err != nil {
		return true
	}
	rv, err := version.NewVersion(requested)
	if err != nil {
		return true
	}
	return iv.GreaterThanOrEqual(rv)
}
