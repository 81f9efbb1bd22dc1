// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/certificate-wizard/cliparse"
	"github.com/danielhkuo/certificate-wizard/db"
	"github.com/danielhkuo/certificate-wizard/models"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointing at webhookURL
func GetTestConfig(webhookURL string) cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		WebhookURL:     webhookURL,
		WebhookTimeout: 5 * time.Second,
		SessionStore:   "memory",
		SessionTTL:     30 * time.Minute,
	}
}

// Webhook is a fake webhook endpoint that records every request it receives
type Webhook struct {
	Server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []models.CertificateRequest
	// release, when set, blocks each request until it is closed
	release chan struct{}
}

// NewWebhook starts a fake webhook answering with status and body.
// The server is closed when the test ends.
func NewWebhook(t *testing.T, status int, body string) *Webhook {
	t.Helper()

	wh := &Webhook{status: status, body: body}
	wh.Server = httptest.NewServer(http.HandlerFunc(wh.serve))
	t.Cleanup(wh.Server.Close)
	return wh
}

func (wh *Webhook) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var req models.CertificateRequest
	_ = json.Unmarshal(raw, &req)

	wh.mu.Lock()
	wh.requests = append(wh.requests, req)
	status, body, release := wh.status, wh.body, wh.release
	wh.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}

	w.WriteHeader(status)
	w.Write([]byte(body))
}

// URL returns the endpoint to configure the client with
func (wh *Webhook) URL() string {
	return wh.Server.URL
}

// SetResponse changes the status and body for later requests
func (wh *Webhook) SetResponse(status int, body string) {
	wh.mu.Lock()
	defer wh.mu.Unlock()
	wh.status = status
	wh.body = body
}

// Block makes later requests wait until the returned function is called
func (wh *Webhook) Block() (unblock func()) {
	ch := make(chan struct{})
	wh.mu.Lock()
	wh.release = ch
	wh.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Requests returns a copy of the decoded requests received so far
func (wh *Webhook) Requests() []models.CertificateRequest {
	wh.mu.Lock()
	defer wh.mu.Unlock()
	return append([]models.CertificateRequest(nil), wh.requests...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
