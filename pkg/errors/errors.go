package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")

	// Credential errors.
	ErrCredentialMissing = fmt.Errorf("API credential unavailable")

	// Resolution errors.
	ErrResolveFailed       = fmt.Errorf("failed to resolve download URL")
	ErrMissingDownloadLink = fmt.Errorf("response contains no download link")

	// Transport errors.
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrUnexpectedStatus = fmt.Errorf("unexpected status code")

	// Extraction and filesystem errors.
	ErrExtractFailed    = fmt.Errorf("archive extraction failed")
	ErrInvalidPath      = fmt.Errorf("invalid path")
	ErrFileHashMismatch = fmt.Errorf("file hash mismatch")

	// Fetch lifecycle errors.
	ErrFetchInProgress = fmt.Errorf("fetch already in progress for target")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
