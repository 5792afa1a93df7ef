// Package resolve exchanges an API credential and request metadata for a
// signed, time-limited download URL.
//
//go:generate mockgen -destination=./mocks/resolve.go -package=mocks . Resolver
package resolve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/glorpus-work/binfetch/pkg/auth"
	"github.com/glorpus-work/binfetch/pkg/errors"
	"github.com/glorpus-work/binfetch/pkg/model"
)

// Resolver defines the interface for resolving a download URL from request
// metadata.
type Resolver interface {
	ResolveURL(ctx context.Context, req model.ResolveRequest) (*model.Resolved, error)
}

// Client resolves download URLs against a single resolution endpoint.
type Client struct {
	client    *http.Client
	endpoint  string
	auth      auth.Authenticator
	userAgent string
}

// linkResponse is the wire shape of the resolution endpoint's reply. Only
// download_link is required; checksum is an optional integrity hint.
type linkResponse struct {
	DownloadLink string `json:"download_link"`
	Checksum     string `json:"checksum,omitempty"`
}

// NewClient creates a resolution client for the given endpoint. The
// authenticator is applied to every request.
func NewClient(endpoint string, authenticator auth.Authenticator, timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = "binfetch/1.0"
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		endpoint:  endpoint,
		auth:      authenticator,
		userAgent: userAgent,
	}
}

// ResolveURL posts the request metadata to the endpoint and extracts the
// download link from the JSON response. Transport errors, non-2xx statuses
// and malformed responses all wrap ErrResolveFailed.
func (c *Client) ResolveURL(ctx context.Context, req model.ResolveRequest) (*model.Resolved, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode resolve request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.auth != nil {
		if err := c.auth.Apply(httpReq); err != nil {
			return nil, errors.Wrap(err, "failed to apply authentication")
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrResolveFailed, "requesting %s: %v", c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d: %w", errors.ErrUnexpectedStatus, resp.StatusCode, errors.ErrResolveFailed)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v: %w", err, errors.ErrResolveFailed)
	}

	var link linkResponse
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v: %w", err, errors.ErrResolveFailed)
	}
	if link.DownloadLink == "" {
		return nil, fmt.Errorf("%w: %w", errors.ErrMissingDownloadLink, errors.ErrResolveFailed)
	}

	parsed, err := url.Parse(link.DownloadLink)
	if err != nil {
		return nil, fmt.Errorf("invalid download link %q: %v: %w", link.DownloadLink, err, errors.ErrResolveFailed)
	}

	return &model.Resolved{URL: parsed, Checksum: link.Checksum}, nil
}
