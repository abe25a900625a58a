package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config FetcherConfig
	}{
		{
			name:   "Default Configuration",
			config: FetcherConfig{},
		},
		{
			name: "Custom Configuration",
			config: FetcherConfig{
				RequestsPerSecond: 5,
				Burst:             3,
				Timeout:           10 * time.Second,
				UserAgent:         "test-agent",
				Client:            &http.Client{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.config)
			if f == nil {
				t.Fatal("New() returned nil")
			}
			if f.client == nil {
				t.Error("HTTP client is nil")
			}
			if f.limiter == nil {
				t.Error("Rate limiter is nil")
			}
			if f.userAgent == "" {
				t.Error("User agent is empty")
			}
			if tt.config.Timeout > 0 && f.client.Timeout != tt.config.Timeout {
				t.Errorf("Expected timeout %v, got %v", tt.config.Timeout, f.client.Timeout)
			}
		})
	}
}

func TestNewDoesNotMutateClient(t *testing.T) {
	client := &http.Client{}
	New(FetcherConfig{Client: client, Timeout: 5 * time.Second})
	if client.Timeout != 0 {
		t.Errorf("Expected caller's client to be untouched, got timeout %v", client.Timeout)
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		responseBody  string
		expectedError bool
	}{
		{
			name:          "Successful Request",
			statusCode:    http.StatusOK,
			responseBody:  `{"statuses":[]}`,
			expectedError: false,
		},
		{
			name:          "Rate Limited",
			statusCode:    http.StatusTooManyRequests,
			responseBody:  `{"errors":[{"code":88}]}`,
			expectedError: true,
		},
		{
			name:          "Unauthorized",
			statusCode:    http.StatusUnauthorized,
			responseBody:  `{"errors":[{"code":32}]}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
					t.Errorf("Expected User-Agent test-agent, got %q", ua)
				}
				if accept := r.Header.Get("Accept"); accept != "application/json" {
					t.Errorf("Expected Accept application/json, got %q", accept)
				}
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.responseBody)
			}))
			defer server.Close()

			f := New(FetcherConfig{RequestsPerSecond: 100, Burst: 10, UserAgent: "test-agent"})
			body, err := f.Fetch(context.Background(), server.URL)

			if tt.expectedError {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !errors.Is(err, ErrStatus) {
					t.Errorf("Expected ErrStatus, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.responseBody) {
					t.Errorf("Expected error to carry response body, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if string(body) != tt.responseBody {
				t.Errorf("Expected body %q, got %q", tt.responseBody, string(body))
			}
		})
	}
}

func TestFetchOnlyOnce(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := New(FetcherConfig{RequestsPerSecond: 100, Burst: 10})
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error but got none")
	}
	if calls != 1 {
		t.Errorf("Expected a single request, got %d", calls)
	}
}

func TestFetchWithContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		io.WriteString(w, "Delayed response")
	}))
	defer server.Close()

	f := New(FetcherConfig{RequestsPerSecond: 10, Burst: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, server.URL)
	if err == nil || !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("Expected context deadline exceeded error, got: %v", err)
	}
}
