package ecobee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWithRetry(t *testing.T) {
	t.Run("applies retry config", func(t *testing.T) {
		config := &RetryConfig{
			MaxRetries:     3,
			InitialBackoff: 50 * time.Millisecond,
			MaxBackoff:     500 * time.Millisecond,
			Multiplier:     2.0,
		}
		client, err := NewClient("app-key", WithRetry(config))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.retry == nil {
			t.Fatal("retry config is nil")
		}
		if client.retry.MaxRetries != 3 {
			t.Errorf("MaxRetries = %d, want 3", client.retry.MaxRetries)
		}
	})

	t.Run("nil config disables retry", func(t *testing.T) {
		client, err := NewClient("app-key", WithRetry(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.retry != nil {
			t.Error("retry config should be nil")
		}
	})
}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()
	if config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", config.MaxRetries)
	}
	if config.InitialBackoff != 100*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 100ms", config.InitialBackoff)
	}
	if config.MaxBackoff != 5*time.Second {
		t.Errorf("MaxBackoff = %v, want 5s", config.MaxBackoff)
	}
	if config.Multiplier != 2.0 {
		t.Errorf("Multiplier = %f, want 2.0", config.Multiplier)
	}
}

// fastRetry keeps retry tests quick.
func fastRetry() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 5 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func summaryOK(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(map[string]any{
		"revisionList":    []string{"318324702718:Main Floor:true:r1:r2:r3:r4"},
		"thermostatCount": 1,
		"statusList":      []string{"318324702718:"},
		"status":          map[string]any{"code": 0, "message": ""},
	})
}

func TestClient_RetryOn429(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempt := atomic.AddInt32(&attempts, 1)
		if attempt <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		summaryOK(w)
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL), WithRetry(fastRetry()))
	installTestTokens(t, client)

	resp, err := client.ThermostatSummary(context.Background(), NewSelection(SelectionTypeRegistered, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *resp.ThermostatCount; got != 1 {
		t.Errorf("ThermostatCount = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestClient_RetryOn500(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		summaryOK(w)
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL), WithRetry(fastRetry()))
	installTestTokens(t, client)

	if _, err := client.ThermostatSummary(context.Background(), NewSelection(SelectionTypeRegistered, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestClient_NoRetryOnValidationError(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[string]any{"code": 4, "message": "Invalid selection."},
		})
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL), WithRetry(fastRetry()))
	installTestTokens(t, client)

	_, err := client.ThermostatSummary(context.Background(), NewSelection(SelectionTypeRegistered, ""))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// HTTP 500 is retryable; the retries must all observe the same failure.
	if got := atomic.LoadInt32(&attempts); got != 4 {
		t.Errorf("attempts = %d, want 4 (initial + 3 retries)", got)
	}
}

func TestClient_NoRetryOn400(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[string]any{"code": 5, "message": "Invalid request format."},
		})
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL), WithRetry(fastRetry()))
	installTestTokens(t, client)

	_, err := client.ThermostatSummary(context.Background(), NewSelection(SelectionTypeRegistered, ""))
	if !IsAPIError(err, 5) {
		t.Fatalf("expected API error code 5, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("attempts = %d, want 1 (client errors are permanent)", got)
	}
}

func TestClient_RetryExhaustion(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL), WithRetry(fastRetry()))
	installTestTokens(t, client)

	_, err := client.ThermostatSummary(context.Background(), NewSelection(SelectionTypeRegistered, ""))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.HTTPStatus != http.StatusTooManyRequests {
		t.Errorf("HTTPStatus = %d, want 429", apiErr.HTTPStatus)
	}
	if got := atomic.LoadInt32(&attempts); got != 4 {
		t.Errorf("attempts = %d, want 4 (initial + 3 retries)", got)
	}
}
