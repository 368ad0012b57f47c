package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizos/backend/internal/infrastructure/config"
)

func testConfig() config.ScrapeConfig {
	return config.ScrapeConfig{
		Timeout:   5 * time.Second,
		UserAgent: "bizos-backend-test/1.0",
		MaxBody:   1 << 20,
	}
}

func TestFetch(t *testing.T) {
	t.Run("extracts title and visible text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bizos-backend-test/1.0", r.Header.Get("User-Agent"))
			w.Write([]byte(`<html><head><title>Acme Corp</title>
				<script>var tracking = true;</script>
				<style>.x{color:red}</style></head>
				<body><h1>About Acme</h1><p>We  sell   widgets.</p>
				<li>Fast shipping</li></body></html>`))
		}))
		defer srv.Close()

		f := NewFetcher(testConfig())
		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "Acme Corp", page.Title)
		assert.Contains(t, page.Text, "About Acme")
		assert.Contains(t, page.Text, "We sell widgets.")
		assert.Contains(t, page.Text, "Fast shipping")
		assert.NotContains(t, page.Text, "tracking")
		assert.NotContains(t, page.Text, "color:red")
	})

	t.Run("falls back to body text for div-only pages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body><div>raw div content</div></body></html>`))
		}))
		defer srv.Close()

		f := NewFetcher(testConfig())
		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "raw div content", page.Text)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		f := NewFetcher(testConfig())
		_, err := f.Fetch(context.Background(), "ftp://example.com/data")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme")
	})

	t.Run("rejects error status codes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := NewFetcher(testConfig())
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("rejects empty pages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body></body></html>`))
		}))
		defer srv.Close()

		f := NewFetcher(testConfig())
		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})

	t.Run("body read stops at the configured limit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body><p>start</p>"))
			for i := 0; i < 5000; i++ {
				w.Write([]byte("<p>filler paragraph content here</p>"))
			}
			w.Write([]byte("</body></html>"))
		}))
		defer srv.Close()

		cfg := testConfig()
		cfg.MaxBody = 2048
		f := NewFetcher(cfg)
		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, page.Text, "start")
		assert.Less(t, len(page.Text), 4096)
	})
}
