// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielhkuo/certificate-wizard/models"
)

// SuccessMessage is returned when the webhook answers 200
const SuccessMessage = "Certificate request submitted successfully!"

// maxErrorBody caps how much of a failed response is echoed back
const maxErrorBody = 1 << 20

// RemoteError is a non-200 answer from the webhook
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Error: %d - %s", e.StatusCode, e.Body)
}

// TransportError covers network, DNS, timeout, and unreadable responses
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Error submitting form: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client POSTs certificate requests to a fixed webhook URL
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a client for url. A nil httpClient gets a client with
// the given timeout; zero timeout means the transport default.
func NewClient(url string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{url: url, client: httpClient}
}

// URL returns the webhook this client posts to
func (c *Client) URL() string {
	return c.url
}

// Submit sends one request. There are no retries.
func (c *Client) Submit(ctx context.Context, req models.CertificateRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		// Body is ignored, but drain it so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return SuccessMessage, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	return "", &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
}
