// Package fetcher orchestrates the ensure-artifact operation: existence
// check, URL resolution, archive download, extraction into the host's asset
// tree and the post-extraction index refresh.
package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/glorpus-work/binfetch/pkg/download"
	"github.com/glorpus-work/binfetch/pkg/errors"
	"github.com/glorpus-work/binfetch/pkg/fsutil"
	"github.com/glorpus-work/binfetch/pkg/logger"
	"github.com/glorpus-work/binfetch/pkg/model"
)

const logCategory = "fetcher"

// EnsureArtifact makes sure the artifact described by target is present under
// the host's asset tree. If the probe file already exists (and no newer
// version is requested) the operation returns immediately without touching
// the network. Otherwise it resolves a download URL, streams the archive to a
// temporary file, extracts it into the target directory and asks the host to
// refresh its asset index. Any phase failing terminates the run with a
// descriptive error; nothing is reported as success on a partial run.
func (f *Fetcher) EnsureArtifact(ctx context.Context, target model.Target, opts Options) error {
	if err := target.Validate(); err != nil {
		return f.fail(target, "invalid target", err)
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}

	// Two runs extracting into the same directory would race on file writes,
	// so overlapping invocations for one target are rejected outright.
	lock := flock.New(filepath.Join(opts.TempDir, "binfetch-"+target.ID()+".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return f.fail(target, "acquiring target lock", err)
	}
	if !locked {
		return f.fail(target, "concurrent run detected", errors.ErrFetchInProgress)
	}
	defer func() { _ = lock.Unlock() }()

	f.emit(Event{Phase: PhaseChecking, Target: target.ID()})
	if !opts.Force && Installed(target) {
		logger.Debug("artifact already present, skipping fetch", logger.Fields{
			"category": logCategory,
			"target":   target.ID(),
			"probe":    target.ProbePath(),
		})
		f.emit(Event{Phase: PhaseDone, Target: target.ID(), Msg: "already installed"})
		return nil
	}

	// Credential check comes before any network traffic. Resolving with an
	// absent key would only surface later as an opaque HTTP failure.
	if _, ok := f.Credentials.APIKey(); !ok {
		return f.fail(target, "no API credential available", errors.ErrCredentialMissing)
	}

	defer f.clearProgress()

	resolved, err := f.resolveURL(ctx, target)
	if err != nil {
		return err
	}

	archivePath, err := f.downloadArchive(ctx, target, resolved, opts.TempDir)
	if err != nil {
		return err
	}
	// The staged archive is transient regardless of how extraction ends.
	defer func() { _ = os.Remove(archivePath) }()

	if err := f.extractArchive(ctx, target, archivePath); err != nil {
		return err
	}

	if err := f.refreshIndex(ctx, target); err != nil {
		return err
	}

	logger.Info("artifact installed", logger.Fields{
		"category": logCategory,
		"target":   target.ID(),
		"dir":      target.Dir(),
	})
	f.emit(Event{Phase: PhaseDone, Target: target.ID()})
	return nil
}

// Installed reports whether the target's probe file exists and the recorded
// version satisfies the requested one. EnsureArtifact uses it as its fast
// path; callers reporting install state should use it too so they agree with
// what a fetch would do.
func Installed(target model.Target) bool {
	info, err := os.Stat(target.ProbePath())
	if err != nil || info.IsDir() {
		return false
	}
	return markerSatisfies(readMarker(target.Dir()), target.Version)
}

func (f *Fetcher) resolveURL(ctx context.Context, target model.Target) (*model.Resolved, error) {
	f.emit(Event{Phase: PhaseResolving, Target: target.ID(), Msg: target.Service + "@" + target.Version})
	resolved, err := f.Resolver.ResolveURL(ctx, model.ResolveRequest{
		ServiceName: target.Service,
		Version:     target.Version,
	})
	if err != nil {
		return nil, f.fail(target, "resolving download URL", err)
	}
	logger.Debug("download URL resolved", logger.Fields{
		"category": logCategory,
		"target":   target.ID(),
		"url":      resolved.URL.String(),
	})
	return resolved, nil
}

func (f *Fetcher) downloadArchive(ctx context.Context, target model.Target, resolved *model.Resolved, tempDir string) (string, error) {
	f.emit(Event{Phase: PhaseDownloading, Target: target.ID(), Msg: resolved.URL.String()})

	item := download.Item{
		ID:       target.ID(),
		URL:      resolved.URL,
		Checksum: resolved.Checksum,
		Filename: target.ID() + "-downloaded.zip",
	}
	path, err := f.DL.Fetch(ctx, item, download.Options{
		Dir: tempDir,
		OnProgress: func(received, total int64) {
			f.showProgress("Downloading runtime", resolved.URL.String(), byteFraction(received, total))
		},
	})
	if err != nil {
		return "", f.fail(target, "downloading archive", err)
	}
	return path, nil
}

func (f *Fetcher) extractArchive(ctx context.Context, target model.Target, archivePath string) error {
	f.emit(Event{Phase: PhaseExtracting, Target: target.ID()})

	destDir := target.Dir()
	if err := fsutil.EnsureDir(destDir); err != nil {
		return f.fail(target, "creating target directory", fmt.Errorf("%v: %w", err, errors.ErrExtractFailed))
	}

	err := f.Extractor.ExtractAll(ctx, archivePath, destDir, func(done, total int) {
		f.showProgress("Extracting runtime", fmt.Sprintf("%d/%d entries", done, total), entryFraction(done, total))
	})
	if err != nil {
		return f.fail(target, "extracting archive", errors.Wrapf(errors.ErrExtractFailed, "%v", err))
	}

	if err := writeMarker(destDir, target.Version); err != nil {
		// The marker only short-circuits future upgrades; a failed write must
		// not undo a completed extraction.
		logger.Warn("could not record installed version", logger.Fields{
			"category": logCategory,
			"target":   target.ID(),
			"error":    err.Error(),
		})
	}
	return nil
}

func (f *Fetcher) refreshIndex(ctx context.Context, target model.Target) error {
	if f.Index == nil {
		return nil
	}
	f.emit(Event{Phase: PhaseRefreshing, Target: target.ID()})
	if err := f.Index.RefreshAssets(ctx); err != nil {
		return f.fail(target, "refreshing host asset index", err)
	}
	return nil
}

// fail logs the error with context, emits an error event and returns the
// wrapped error.
func (f *Fetcher) fail(target model.Target, msg string, err error) error {
	wrapped := errors.Wrap(err, msg)
	logger.Error(msg, logger.Fields{
		"category": logCategory,
		"target":   target.ID(),
		"error":    err.Error(),
	})
	f.emit(Event{Phase: PhaseError, Target: target.ID(), Msg: wrapped.Error()})
	return wrapped
}

func (f *Fetcher) emit(e Event) {
	if f.Hooks.OnEvent != nil {
		f.Hooks.OnEvent(e)
	}
}

func (f *Fetcher) showProgress(title, message string, fraction float64) {
	if f.Progress != nil {
		f.Progress.ShowProgress(title, message, fraction)
	}
}

func (f *Fetcher) clearProgress() {
	if f.Progress != nil {
		f.Progress.ClearProgress()
	}
}

// byteFraction maps a byte count against an expected total to [0, 1]. An
// unknown total reports zero rather than a made-up fraction.
func byteFraction(received, total int64) float64 {
	if total <= 0 {
		return 0
	}
	frac := float64(received) / float64(total)
	if frac > 1 {
		frac = 1
	}
	return frac
}

// entryFraction maps extracted-entry counts to [0, 1].
func entryFraction(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	frac := float64(done) / float64(total)
	if frac > 1 {
		frac = 1
	}
	return frac
}
