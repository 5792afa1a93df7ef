package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(level string, fn func()) string {
	buf := &bytes.Buffer{}
	InitLogger(level, true)
	SetOutput(buf)
	fn()
	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("fetch complete", Fields{"category": "fetcher"}) },
			contains: []string{"fetch complete", "category=fetcher"},
		},
		{
			name:     "debug suppressed at info level",
			level:    "info",
			logFn:    func() { Debug("probe path checked") },
			excludes: []string{"probe path checked"},
		},
		{
			name:     "debug shown at debug level",
			level:    "debug",
			logFn:    func() { Debug("probe path checked") },
			contains: []string{"probe path checked"},
		},
		{
			name:     "error log with fields",
			level:    "info",
			logFn:    func() { Error("download failed", Fields{"url": "http://x/y.zip"}) },
			contains: []string{"download failed", "url="},
		},
		{
			name:     "invalid level falls back to info",
			level:    "nonsense",
			logFn:    func() { Info("still logs") },
			contains: []string{"still logs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(tt.level, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}
