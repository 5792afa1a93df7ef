package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTarget() Target {
	return Target{
		DataRoot: string(filepath.Separator) + filepath.Join("host", "assets"),
		RelDir:   "Vendor/Plugins/protort/runtimes",
		Probe:    "ios/libprotort.a",
		Service:  "protort",
		Version:  "ios",
	}
}

func TestTargetPaths(t *testing.T) {
	tgt := validTarget()

	wantDir := filepath.Join(tgt.DataRoot, "Vendor", "Plugins", "protort", "runtimes")
	assert.Equal(t, wantDir, tgt.Dir())
	assert.Equal(t, filepath.Join(wantDir, "ios", "libprotort.a"), tgt.ProbePath())
}

func TestTargetID(t *testing.T) {
	tgt := validTarget()
	assert.Equal(t, "Vendor-Plugins-protort-runtimes", tgt.ID())
}

func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Target)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Target) {}},
		{name: "relative data root", mutate: func(t *Target) { t.DataRoot = "relative/root" }, wantErr: true},
		{name: "empty data root", mutate: func(t *Target) { t.DataRoot = "" }, wantErr: true},
		{name: "absolute rel dir", mutate: func(t *Target) { t.RelDir = "/abs/dir" }, wantErr: true},
		{name: "rel dir escapes root", mutate: func(t *Target) { t.RelDir = "../outside" }, wantErr: true},
		{name: "empty probe", mutate: func(t *Target) { t.Probe = "" }, wantErr: true},
		{name: "probe escapes dir", mutate: func(t *Target) { t.Probe = "../../etc/passwd" }, wantErr: true},
		{name: "empty service", mutate: func(t *Target) { t.Service = "" }, wantErr: true},
		{name: "empty version", mutate: func(t *Target) { t.Version = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := validTarget()
			tt.mutate(&tgt)
			err := tgt.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
