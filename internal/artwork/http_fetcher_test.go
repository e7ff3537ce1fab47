package artwork

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

// testConfig is a fixed domain.Config
type testConfig struct {
	artworkURL string
	cacheDir   string
	retries    int
}

func (c testConfig) Source() string         { return "mpd" }
func (c testConfig) MPDAddr() string        { return "localhost:6600" }
func (c testConfig) MPDPassword() string    { return "" }
func (c testConfig) ArtworkBaseURL() string { return c.artworkURL }
func (c testConfig) OutputDir() string      { return "" }
func (c testConfig) CacheDir() string       { return c.cacheDir }
func (c testConfig) PrefsPath() string      { return "" }
func (c testConfig) Language() string       { return "en" }
func (c testConfig) FetchRetries() int      { return c.retries }

func newTestFetcher(retries int) *HTTPFetcher {
	f := NewHTTPFetcher(zap.NewNop(), testConfig{retries: retries})
	f.retrying.RetryWaitMin = time.Millisecond
	f.retrying.RetryWaitMax = 5 * time.Millisecond
	return f
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		responseBody   []byte
		statusCode     int
		ctxFunc        func() (context.Context, context.CancelFunc)
		expectedError  string
		expectedIs     error
		expectedLength int
	}{
		{
			name:           "Success - Valid Image",
			contentType:    "image/jpeg",
			responseBody:   []byte("fake-image-data"),
			statusCode:     http.StatusOK,
			expectedLength: 15,
		},
		{
			name:        "Error - 404 Not Found",
			contentType: "image/jpeg",
			statusCode:  http.StatusNotFound,
			expectedIs:  ErrNotFound,
		},
		{
			name:          "Error - 403 Forbidden",
			contentType:   "image/jpeg",
			statusCode:    http.StatusForbidden,
			expectedError: "unexpected status code: 403",
		},
		{
			name:         "Error - Invalid Content Type",
			contentType:  "text/plain",
			responseBody: []byte("not-an-image"),
			statusCode:   http.StatusOK,
			expectedIs:   ErrNotImage,
		},
		{
			name:           "Error - Response Too Large",
			contentType:    "image/png",
			responseBody:   []byte(strings.Repeat("a", 11*1024*1024)),
			statusCode:     http.StatusOK,
			expectedLength: 10 * 1024 * 1024, // io.ReadAll stops at the limit
		},
		{
			name: "Error - Context Cancelled",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // Cancel immediately
				return ctx, cancel
			},
			expectedError: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.responseBody)
			}))
			defer server.Close()

			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
			}
			defer cancel()

			fetcher := newTestFetcher(0)
			data, err := fetcher.Fetch(ctx, server.URL, false)

			if tt.expectedIs != nil {
				if !errors.Is(err, tt.expectedIs) {
					t.Fatalf("expected %v, got %v", tt.expectedIs, err)
				}
				return
			}
			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.expectedLength {
				t.Errorf("expected data length %d, got %d", tt.expectedLength, len(data))
			}
		})
	}
}

func TestHTTPFetcher_Retries(t *testing.T) {
	tests := []struct {
		name          string
		retry         bool
		expectedCalls int32
		expectSuccess bool
	}{
		{name: "Display load retries", retry: true, expectedCalls: 2, expectSuccess: true},
		{name: "Warm fetch does not retry", retry: false, expectedCalls: 1, expectSuccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// the first request fails
				if calls.Add(1) == 1 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("png"))
			}))
			defer server.Close()

			fetcher := newTestFetcher(2)
			_, err := fetcher.Fetch(context.Background(), server.URL, tt.retry)

			if tt.expectSuccess && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.expectSuccess && err == nil {
				t.Fatal("expected an error")
			}
			if calls.Load() != tt.expectedCalls {
				t.Errorf("expected %d requests, got %d", tt.expectedCalls, calls.Load())
			}
		})
	}
}
