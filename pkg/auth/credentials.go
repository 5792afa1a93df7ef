//go:generate mockgen -destination=./mocks/credentials.go -package=mocks . CredentialProvider
package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/glorpus-work/binfetch/pkg/errors"
)

// CredentialProvider supplies the API key authorizing resolution calls. The
// boolean reports whether a usable key could be obtained.
type CredentialProvider interface {
	APIKey() (key string, ok bool)
}

// StaticKey is a CredentialProvider backed by a fixed key.
type StaticKey string

// APIKey returns the fixed key; an empty key counts as unavailable.
func (s StaticKey) APIKey() (string, bool) {
	return string(s), s != ""
}

// EnvKey is a CredentialProvider that reads the key from the named
// environment variable on every call.
type EnvKey string

// APIKey reads the environment variable; unset or empty counts as unavailable.
func (e EnvKey) APIKey() (string, bool) {
	key := os.Getenv(string(e))
	return key, key != ""
}

// FileKey is a CredentialProvider that reads the key from a file, trimming
// surrounding whitespace.
type FileKey string

// APIKey reads the key file; a missing file or empty content counts as
// unavailable.
func (f FileKey) APIKey() (string, bool) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	return key, key != ""
}

// ProviderAuth adapts a CredentialProvider into an Authenticator that sends
// the key in the X-API-KEY header. Apply fails when no key is available, so a
// request is never issued with an empty credential.
type ProviderAuth struct {
	Provider CredentialProvider
}

// Apply sets the X-API-KEY header from the provider.
func (p ProviderAuth) Apply(req *http.Request) error {
	key, ok := p.Provider.APIKey()
	if !ok {
		return errors.ErrCredentialMissing
	}
	req.Header.Set(APIKeyHeader, key)
	return nil
}

// Type returns the authentication type (HeaderAuthType).
func (p ProviderAuth) Type() Type { return HeaderAuthType }
