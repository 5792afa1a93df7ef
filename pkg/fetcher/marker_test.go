package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	assert.Empty(t, readMarker(dir), "missing marker reads as empty")

	require.NoError(t, writeMarker(dir, "1.2.0"))
	assert.Equal(t, "1.2.0", readMarker(dir))

	require.NoError(t, writeMarker(dir, "ios"))
	assert.Equal(t, "ios", readMarker(dir))
}

func TestMarkerSatisfies(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		requested string
		want      bool
	}{
		{name: "no marker", installed: "", requested: "1.0.0", want: true},
		{name: "equal versions", installed: "1.0.0", requested: "1.0.0", want: true},
		{name: "newer installed", installed: "2.0.0", requested: "1.0.0", want: true},
		{name: "older installed", installed: "1.0.0", requested: "1.2.0", want: false},
		{name: "non-semver installed", installed: "ios", requested: "1.0.0", want: true},
		{name: "non-semver requested", installed: "1.0.0", requested: "ios", want: true},
		{name: "platform tags both", installed: "ios", requested: "ios", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markerSatisfies(tt.installed, tt.requested))
		})
	}
}
