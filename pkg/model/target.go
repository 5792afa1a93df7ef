// Package model provides the data structures shared between the resolve,
// download and fetcher packages.
package model

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/binfetch/pkg/errors"
)

// Target describes where an artifact must live inside the host's asset tree
// and how its presence is detected. Values are computed up front and threaded
// through the fetch operation; nothing here is cached globally.
type Target struct {
	// DataRoot is the absolute root of the host's asset tree.
	DataRoot string
	// RelDir is the fixed slash-separated directory under DataRoot where the
	// archive is extracted, e.g. "Vendor/Plugins/protort/runtimes".
	RelDir string
	// Probe is the slash-separated path, relative to RelDir, of the file whose
	// presence means the artifact is already installed, e.g. "ios/libprotort.a".
	Probe string
	// Service is the service identifier sent to the resolution endpoint.
	Service string
	// Version is the platform/version tag sent to the resolution endpoint.
	Version string
}

// Dir returns the absolute directory the archive is extracted into.
func (t Target) Dir() string {
	return filepath.Join(t.DataRoot, filepath.FromSlash(t.RelDir))
}

// ProbePath returns the absolute path of the existence-check file.
func (t Target) ProbePath() string {
	return filepath.Join(t.Dir(), filepath.FromSlash(t.Probe))
}

// ID returns a stable identifier for the target, used for lock files and log
// fields.
func (t Target) ID() string {
	s := strings.NewReplacer("/", "-", "\\", "-").Replace(t.RelDir)
	return strings.Trim(s, "-")
}

// Validate checks that the target is complete enough to fetch.
func (t Target) Validate() error {
	if t.DataRoot == "" || !filepath.IsAbs(t.DataRoot) {
		return fmt.Errorf("data root must be absolute: %q: %w", t.DataRoot, errors.ErrInvalidPath)
	}
	if t.RelDir == "" || strings.HasPrefix(t.RelDir, "/") || strings.Contains(t.RelDir, "..") {
		return fmt.Errorf("target directory must be a clean relative path: %q: %w", t.RelDir, errors.ErrInvalidPath)
	}
	if t.Probe == "" || strings.HasPrefix(t.Probe, "/") || strings.Contains(t.Probe, "..") {
		return fmt.Errorf("probe path must be a clean relative path: %q: %w", t.Probe, errors.ErrInvalidPath)
	}
	if t.Service == "" {
		return fmt.Errorf("service identifier cannot be empty: %w", errors.ErrConfigValidation)
	}
	if t.Version == "" {
		return fmt.Errorf("version tag cannot be empty: %w", errors.ErrConfigValidation)
	}
	return nil
}

// ResolveRequest is the body sent to the resolution endpoint.
type ResolveRequest struct {
	ServiceName string `json:"service_name"`
	Version     string `json:"version"`
}

// Resolved is the outcome of a URL resolution: a one-shot download URL and an
// optional expected checksum.
type Resolved struct {
	URL      *url.URL
	Checksum string // optional hex-encoded SHA-256 of the archive
}
