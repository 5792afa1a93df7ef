//go:generate mockgen -destination=./mocks/download.go -package=mocks . Manager
package download

import (
	"context"
	"net/url"
)

// Manager defines the interface for downloading a remote archive to local
// storage. It replaces ad-hoc HTTP downloading with a testable API that
// supports progress reporting and integrity verification.
type Manager interface {
	// Fetch downloads a single item into opts.Dir and returns the absolute
	// local file path.
	Fetch(ctx context.Context, item Item, opts Options) (string, error)
}

// Item represents one remote resource to download.
type Item struct {
	ID       string   // stable identifier used in log fields
	URL      *url.URL // source URL to download
	Checksum string   // optional hex-encoded SHA-256 checksum; if provided, will be verified
	Filename string   // optional preferred filename; if empty, a name will be derived
}

// Options control the behavior of the download manager.
type Options struct {
	// Dir is the destination directory. Must be absolute; callers staging a
	// transient archive pass a directory under the OS temp dir.
	Dir string
	// OnProgress, if set, is called as bytes arrive with the running byte
	// count and the expected total. Total is negative when the server does
	// not announce a content length.
	OnProgress func(received, total int64)
}
