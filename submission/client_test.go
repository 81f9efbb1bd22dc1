// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/certificate-wizard/models"
)

func testRequest(t *testing.T) models.CertificateRequest {
	t.Helper()
	date, err := models.ParseDate("2025-03-07")
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	return models.CertificateRequest{
		Type:  models.CertYoga,
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Date:  date,
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotContentType, gotMethod string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode webhook body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":"ignored"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	msg, err := client.Submit(context.Background(), testRequest(t))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if msg != "Certificate request submitted successfully!" {
		t.Errorf("Expected success message, got '%s'", msg)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", gotContentType)
	}

	expected := map[string]string{
		"type":        "Yoga",
		"name":        "Asha Rao",
		"email":       "asha@example.com",
		"date":        "2025-03-07",
		"blood_group": "",
	}
	for k, v := range expected {
		got, ok := gotBody[k]
		if !ok {
			t.Errorf("Expected key '%s' in webhook body", k)
			continue
		}
		if got != v {
			t.Errorf("Expected %s='%s', got '%s'", k, v, got)
		}
	}
	if len(gotBody) != len(expected) {
		t.Errorf("Expected %d keys in webhook body, got %d", len(expected), len(gotBody))
	}
}

func TestSubmitRemoteError(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"internal error", http.StatusInternalServerError, "Internal Error", "Error: 500 - Internal Error"},
		{"bad request", http.StatusBadRequest, `{"error":"bad"}`, `Error: 400 - {"error":"bad"}`},
		{"empty body", http.StatusServiceUnavailable, "", "Error: 503 - "},
		{"created is not success", http.StatusCreated, "created", "Error: 201 - created"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, nil)
			msg, err := client.Submit(context.Background(), testRequest(t))
			if err == nil {
				t.Fatal("Expected error for non-200 status")
			}
			if msg != "" {
				t.Errorf("Expected empty message on failure, got '%s'", msg)
			}

			var remote *RemoteError
			if !errors.As(err, &remote) {
				t.Fatalf("Expected *RemoteError, got %T", err)
			}
			if remote.StatusCode != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, remote.StatusCode)
			}
			if err.Error() != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, err.Error())
			}
		})
	}
}

func TestSubmitConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing listens on url anymore

	client := NewClient(url, time.Second, nil)
	_, err := client.Submit(context.Background(), testRequest(t))
	if err == nil {
		t.Fatal("Expected error when webhook is unreachable")
	}

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("Expected *TransportError, got %T", err)
	}
	if !strings.HasPrefix(err.Error(), "Error submitting form: ") {
		t.Errorf("Expected 'Error submitting form: ' prefix, got '%s'", err.Error())
	}
	if !strings.Contains(err.Error(), transport.Err.Error()) {
		t.Errorf("Expected message to contain underlying error '%s', got '%s'", transport.Err.Error(), err.Error())
	}
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, 50*time.Millisecond, nil)
	_, err := client.Submit(context.Background(), testRequest(t))

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("Expected *TransportError on timeout, got %T (%v)", err, err)
	}
}

func TestSubmitCanceledContext(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, time.Second, nil)
	_, err := client.Submit(ctx, testRequest(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
	if called {
		t.Error("Expected no request to reach the webhook")
	}
}

func TestSubmitInvalidURL(t *testing.T) {
	client := NewClient("://missing-scheme", time.Second, nil)
	_, err := client.Submit(context.Background(), testRequest(t))

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("Expected *TransportError for bad URL, got %T", err)
	}
}

func TestSubmitBloodGroupVerbatim(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer server.Close()

	req := testRequest(t)
	req.Type = models.CertBloodDonation
	req.BloodGroup = models.BloodABNeg

	client := NewClient(server.URL, time.Second, nil)
	if _, err := client.Submit(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if gotBody["type"] != "BloodDonation" {
		t.Errorf("Expected type 'BloodDonation', got '%s'", gotBody["type"])
	}
	if gotBody["blood_group"] != "AB-" {
		t.Errorf("Expected blood_group 'AB-', got '%s'", gotBody["blood_group"])
	}
}
