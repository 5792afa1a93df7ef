package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/binfetch/pkg/errors"
)

func TestNewManager(t *testing.T) {
	tests := []struct {
		name       string
		timeout    time.Duration
		userAgent  string
		expectedUA string
	}{
		{
			name:       "default user agent",
			timeout:    time.Second,
			expectedUA: "binfetch/1.0",
		},
		{
			name:       "custom user agent",
			timeout:    2 * time.Second,
			userAgent:  "test-agent/1.0",
			expectedUA: "test-agent/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.timeout, tt.userAgent)
			require.NotNil(t, m)
			assert.Equal(t, tt.timeout, m.client.Timeout)
			assert.Equal(t, tt.expectedUA, m.userAgent)
		})
	}
}

func serverURL(t *testing.T, server *httptest.Server) *url.URL {
	t.Helper()
	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	return parsed
}

func TestFetch(t *testing.T) {
	content := []byte("archive bytes")
	sum := sha256.Sum256(content)

	tests := []struct {
		name        string
		setupServer func() *httptest.Server
		item        Item
		wantErr     error
	}{
		{
			name: "successful download",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write(content)
				}))
			},
			item: Item{ID: "ok", Filename: "downloaded.zip"},
		},
		{
			name: "checksum verified",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write(content)
				}))
			},
			item: Item{ID: "sum", Filename: "downloaded.zip", Checksum: hex.EncodeToString(sum[:])},
		},
		{
			name: "checksum mismatch",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write(content)
				}))
			},
			item:    Item{ID: "bad-sum", Filename: "downloaded.zip", Checksum: "deadbeef"},
			wantErr: errors.ErrFileHashMismatch,
		},
		{
			name: "not found",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
			},
			item:    Item{ID: "missing", Filename: "downloaded.zip"},
			wantErr: errors.ErrDownloadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.setupServer()
			defer server.Close()
			tt.item.URL = serverURL(t, server)

			dir := t.TempDir()
			m := NewManager(time.Second, "")
			path, err := m.Fetch(context.Background(), tt.item, Options{Dir: dir})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				// Nothing may linger in the download dir after a failure.
				entries, readErr := os.ReadDir(dir)
				require.NoError(t, readErr)
				assert.Empty(t, entries)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "downloaded.zip"), path)
			got, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, content, got)

			// The staging temp file must be gone once the download finalizes.
			entries, readErr := os.ReadDir(dir)
			require.NoError(t, readErr)
			require.Len(t, entries, 1)
			assert.Equal(t, "downloaded.zip", entries[0].Name())
		})
	}
}

func TestFetch_InvalidDir(t *testing.T) {
	m := NewManager(time.Second, "")
	u, _ := url.Parse("http://example.com/a.zip")

	_, err := m.Fetch(context.Background(), Item{ID: "x", URL: u}, Options{Dir: "relative/dir"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}

func TestFetch_NilURL(t *testing.T) {
	m := NewManager(time.Second, "")

	_, err := m.Fetch(context.Background(), Item{ID: "x"}, Options{Dir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestFetch_DerivedFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer server.Close()

	m := NewManager(time.Second, "")
	item := Item{ID: "derived", URL: serverURL(t, server)}
	path, err := m.Fetch(context.Background(), item, Options{Dir: t.TempDir()})

	require.NoError(t, err)
	h := sha256.Sum256([]byte(item.URL.String()))
	assert.Equal(t, hex.EncodeToString(h[:]), filepath.Base(path))
}

func TestFetch_ProgressMonotonicAndBounded(t *testing.T) {
	payload := make([]byte, 256*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "262144")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	var calls []int64
	var totals []int64
	m := NewManager(time.Second, "")
	_, err := m.Fetch(context.Background(), Item{ID: "p", URL: serverURL(t, server), Filename: "p.zip"}, Options{
		Dir: t.TempDir(),
		OnProgress: func(received, total int64) {
			calls = append(calls, received)
			totals = append(totals, total)
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, calls)
	assert.EqualValues(t, 0, calls[0], "first report announces zero bytes")
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i], calls[i-1], "byte counts must not decrease")
	}
	last := calls[len(calls)-1]
	assert.EqualValues(t, len(payload), last)
	for _, total := range totals {
		assert.EqualValues(t, len(payload), total)
		assert.LessOrEqual(t, last, total)
	}
}
