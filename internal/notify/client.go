package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrUpstream = errors.New("upstream request failed")
	// ErrNotConfigured is returned by side effects whose target service is not configured.
	ErrNotConfigured = errors.New("service not configured")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

func postJSON(ctx context.Context, client HTTPClient, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, bytes.TrimSpace(b))
	}
	return nil
}
