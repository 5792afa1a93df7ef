//go:generate mockgen -destination=./mocks/fetcher.go -package=mocks . IndexRefresher,ProgressReporter

package fetcher

import (
	"context"

	"github.com/glorpus-work/binfetch/pkg/archive"
	"github.com/glorpus-work/binfetch/pkg/auth"
	"github.com/glorpus-work/binfetch/pkg/download"
	"github.com/glorpus-work/binfetch/pkg/resolve"
)

// IndexRefresher asks the host application to re-scan its asset tree after
// new files have been written into it.
type IndexRefresher interface {
	RefreshAssets(ctx context.Context) error
}

// ProgressReporter receives fractional progress updates for the host UI.
// Fractions are in [0, 1] and non-decreasing within a phase.
type ProgressReporter interface {
	ShowProgress(title, message string, fraction float64)
	ClearProgress()
}

// Fetcher ties credential lookup, URL resolution, download and extraction
// together for one ensure-artifact operation. All collaborators are injected;
// nil Index, Progress and Hooks fields are tolerated.
type Fetcher struct {
	Credentials auth.CredentialProvider
	Resolver    resolve.Resolver
	DL          download.Manager
	Extractor   archive.Extractor
	Index       IndexRefresher
	Progress    ProgressReporter
	Hooks       Hooks
}

// Event represents a simple progress notification.
type Event struct {
	Phase  string // checking|resolving|downloading|extracting|refreshing|done|error
	Target string // target ID
	Msg    string
}

// Phase names carried by events.
const (
	PhaseChecking    = "checking"
	PhaseResolving   = "resolving"
	PhaseDownloading = "downloading"
	PhaseExtracting  = "extracting"
	PhaseRefreshing  = "refreshing"
	PhaseDone        = "done"
	PhaseError       = "error"
)

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control a single EnsureArtifact run.
type Options struct {
	// TempDir is where the transient archive is staged. Defaults to the OS
	// temp directory.
	TempDir string
	// Force skips the existence fast path and refetches unconditionally.
	Force bool
}
