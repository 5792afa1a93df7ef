package config

import (
	"fmt"

	"github.com/glorpus-work/binfetch/pkg/auth"
	"github.com/glorpus-work/binfetch/pkg/errors"
)

// CredentialConfig selects where the API key comes from. Exactly one source
// may be set.
type CredentialConfig struct {
	// Key is a literal API key. Discouraged outside of tests.
	Key string `yaml:"key,omitempty"`
	// Env names an environment variable holding the key.
	Env string `yaml:"env,omitempty"`
	// File is a path to a file holding the key.
	File string `yaml:"file,omitempty"`
}

// ToProvider converts the credential configuration to a CredentialProvider.
func (c CredentialConfig) ToProvider() auth.CredentialProvider {
	switch {
	case c.Key != "":
		return auth.StaticKey(c.Key)
	case c.Env != "":
		return auth.EnvKey(c.Env)
	case c.File != "":
		return auth.FileKey(c.File)
	default:
		return auth.StaticKey("")
	}
}

func (c CredentialConfig) validate() error {
	set := 0
	for _, v := range []string{c.Key, c.Env, c.File} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return fmt.Errorf("credential source must be configured: %w", errors.ErrConfigValidation)
	}
	if set > 1 {
		return fmt.Errorf("only one credential source may be set: %w", errors.ErrConfigValidation)
	}
	return nil
}
