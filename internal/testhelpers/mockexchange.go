// Package testhelpers provides a configurable mock exchange server for
// tests.
package testhelpers

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/andybalholm/brotli"
)

// Envelope mirrors the exchange's uniform response wrapper.
type Envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// MockExchange is a configurable stand-in for the exchange API. It serves
// the token endpoint and any data endpoints registered on it, counting
// every request so tests can assert exact network call counts.
type MockExchange struct {
	Server *httptest.Server

	// ExpiresIn is the token lifetime reported by the auth endpoint.
	ExpiresIn int

	// AuthStatus is the HTTP status returned by the auth endpoint.
	AuthStatus int

	// AuthCode is the envelope code returned by the auth endpoint.
	AuthCode int

	mu          sync.Mutex
	mux         *http.ServeMux
	authCalls   int
	dataCalls   int
	lastHeaders http.Header
}

// SetupMockExchange creates a mock exchange serving the token endpoint.
// Each authentication returns a distinct token ("token-1", "token-2", ...)
// so tests can observe which refresh produced the token in use.
func SetupMockExchange(t *testing.T) *MockExchange {
	t.Helper()

	m := &MockExchange{
		ExpiresIn:  3600,
		AuthStatus: http.StatusOK,
		AuthCode:   200,
		mux:        http.NewServeMux(),
	}

	m.mux.HandleFunc("/dceapi/cms/auth/accessToken", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.authCalls++
		n := m.authCalls
		status := m.AuthStatus
		code := m.AuthCode
		expiresIn := m.ExpiresIn
		m.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		if code != 200 {
			WriteEnvelope(w, code, "authentication rejected", nil)
			return
		}

		WriteEnvelope(w, 200, "success", map[string]any{
			"tokenType": "Bearer",
			"token":     fmt.Sprintf("token-%d", n),
			"expiresIn": expiresIn,
		})
	})

	m.Server = httptest.NewServer(m.mux)
	t.Cleanup(m.Server.Close)

	return m
}

// URL returns the mock server's base URL, for use as Config.BaseURL.
func (m *MockExchange) URL() string {
	return m.Server.URL
}

// Handle registers a raw handler for a data endpoint. The handler runs
// after request counting and header capture.
func (m *MockExchange) Handle(path string, fn http.HandlerFunc) {
	m.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.dataCalls++
		m.lastHeaders = r.Header.Clone()
		m.mu.Unlock()

		fn(w, r)
	})
}

// HandleData registers a data endpoint that always succeeds with the given
// payload.
func (m *MockExchange) HandleData(path string, data any) {
	m.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		WriteEnvelope(w, 200, "success", data)
	})
}

// HandleSequence registers a data endpoint that serves each handler once,
// in order, then keeps repeating the last one.
func (m *MockExchange) HandleSequence(path string, fns ...http.HandlerFunc) {
	var mu sync.Mutex
	i := 0

	m.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		fn := fns[min(i, len(fns)-1)]
		i++
		mu.Unlock()

		fn(w, r)
	})
}

// AuthCalls returns the number of authentication requests received.
func (m *MockExchange) AuthCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authCalls
}

// DataCalls returns the number of data requests received.
func (m *MockExchange) DataCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dataCalls
}

// TotalCalls returns the number of requests of any kind received.
func (m *MockExchange) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authCalls + m.dataCalls
}

// LastDataHeaders returns the headers of the most recent data request.
func (m *MockExchange) LastDataHeaders() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHeaders
}

// WriteEnvelope writes an enveloped JSON response.
func WriteEnvelope(w http.ResponseWriter, code int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(Envelope{Code: code, Msg: msg, Data: data})
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to marshal JSON: %v", err), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(body)
}

// WriteCompressedEnvelope writes an enveloped JSON response compressed with
// the given coding ("gzip", "br" or "deflate") and the matching
// Content-Encoding header.
func WriteCompressedEnvelope(t *testing.T, w http.ResponseWriter, encoding string, code int, msg string, data any) {
	t.Helper()

	body, err := json.Marshal(Envelope{Code: code, Msg: msg, Data: data})
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Encoding", encoding)
	_, _ = w.Write(Compress(t, encoding, body))
}

// Compress compresses body with the given content coding.
func Compress(t *testing.T, encoding string, body []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	switch encoding {
	case "gzip":
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(body); err != nil {
			t.Fatalf("gzip write: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("gzip close: %v", err)
		}
	case "br":
		bw := brotli.NewWriter(&buf)
		if _, err := bw.Write(body); err != nil {
			t.Fatalf("brotli write: %v", err)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("brotli close: %v", err)
		}
	case "deflate":
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(body); err != nil {
			t.Fatalf("deflate write: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("deflate close: %v", err)
		}
	default:
		t.Fatalf("unsupported encoding %q", encoding)
	}

	return buf.Bytes()
}
