package reader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInvalidInput(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"ftp scheme", "ftp://x"},
		{"no scheme", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Read(context.Background(), tt.url, false)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Validation failures must never reach the network.
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestRead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "none", r.Header.Get("X-Retain-Images"))
		assert.Equal(t, "discarded", r.Header.Get("X-Md-Link-Style"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-With-Links-Summary"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 200,
			"status": 20000,
			"data": {
				"title": "Example",
				"url": "https://example.com/",
				"content": "Example Domain",
				"usage": {"tokens": 42}
			}
		}`))
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"})

	resp, err := c.Read(context.Background(), "https://example.com", false)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Example", resp.Data.Title)
	assert.Equal(t, "Example Domain", resp.Data.Content)
	assert.Equal(t, 42, resp.Data.Usage.Tokens)
}

func TestReadWithAllLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.Header.Get("X-With-Links-Summary"))
		w.Write([]byte(`{"data": {"title": "t", "url": "u", "content": "c", "usage": {"tokens": 1}}}`))
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})

	_, err := c.Read(context.Background(), "https://example.com", true)
	require.NoError(t, err)
}

func TestReadMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 200, "status": 20000}`))
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})

	_, err := c.Read(context.Background(), "https://example.com", false)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestReadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})

	_, err := c.Read(context.Background(), "https://example.com", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestReadMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})

	_, err := c.Read(context.Background(), "https://example.com", false)
	assert.Error(t, err)
}
