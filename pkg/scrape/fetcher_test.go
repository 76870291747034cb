package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	var gotUserAgent, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>listings</body></html>"))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, "Screenwatch/1.0")
	body, err := f.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Contains(t, body, "listings")
	assert.Equal(t, "Screenwatch/1.0", gotUserAgent)
	assert.Contains(t, gotAccept, "text/html")
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, "Screenwatch/1.0")
	_, err := f.Fetch(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 503")
}

func TestFetcher_Fetch_NonUTF8Charset(t *testing.T) {
	// "Продажа" encoded in windows-1251
	cp1251 := []byte{0xcf, 0xf0, 0xee, 0xe4, 0xe0, 0xe6, 0xe0}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write(cp1251)
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, "Screenwatch/1.0")
	body, err := f.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "Продажа", body)
}

func TestFetcher_Fetch_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	f := NewFetcher(5*time.Second, "Screenwatch/1.0")
	_, err := f.Fetch(ctx, ts.URL)
	require.Error(t, err)
}

func TestFetcher_Fetch_BadURL(t *testing.T) {
	f := NewFetcher(time.Second, "Screenwatch/1.0")
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1") // nothing listens here
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch URL")
}
