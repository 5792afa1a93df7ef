package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/binfetch/pkg/auth"
)

func TestCredentialConfig_ToProvider(t *testing.T) {
	t.Run("literal key", func(t *testing.T) {
		key, ok := CredentialConfig{Key: "literal"}.ToProvider().APIKey()
		require.True(t, ok)
		assert.Equal(t, "literal", key)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("BINFETCH_CONFIG_TEST_KEY", "from-env")
		provider := CredentialConfig{Env: "BINFETCH_CONFIG_TEST_KEY"}.ToProvider()
		key, ok := provider.APIKey()
		require.True(t, ok)
		assert.Equal(t, "from-env", key)
	})

	t.Run("key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keyfile")
		require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))
		key, ok := CredentialConfig{File: path}.ToProvider().APIKey()
		require.True(t, ok)
		assert.Equal(t, "from-file", key)
	})

	t.Run("nothing configured", func(t *testing.T) {
		provider := CredentialConfig{}.ToProvider()
		assert.IsType(t, auth.StaticKey(""), provider)
		_, ok := provider.APIKey()
		assert.False(t, ok)
	})
}

func TestCredentialConfig_Validate(t *testing.T) {
	assert.NoError(t, CredentialConfig{Key: "k"}.validate())
	assert.NoError(t, CredentialConfig{Env: "VAR"}.validate())
	assert.NoError(t, CredentialConfig{File: "/path"}.validate())
	assert.Error(t, CredentialConfig{}.validate())
	assert.Error(t, CredentialConfig{Key: "k", Env: "VAR"}.validate())
}
