package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDirectWithoutMirrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>program</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(nil, time.Second)
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>program</html>", body)
}

func TestFetchFallsBackToNextMirror(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer bad.Close()

	var goodCalls int
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goodCalls++
		assert.Contains(t, r.URL.String(), "example.com/program")
		w.Write([]byte("ok"))
	}))
	defer good.Close()

	f := NewFetcher([]string{bad.URL + "/fetch/", good.URL + "/fetch/"}, time.Second)
	body, err := f.Fetch(context.Background(), "http://example.com/program")
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
	assert.Equal(t, 1, goodCalls)
}

func TestFetchExpandsPlaceholderMirror(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "http://example.com/p", r.URL.Query().Get("url"))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher([]string{srv.URL + "/raw?url={url}"}, time.Second)
	_, err := f.Fetch(context.Background(), "http://example.com/p")
	require.NoError(t, err)
}

func TestFetchAllMirrorsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher([]string{srv.URL + "/a/", srv.URL + "/b/"}, time.Second)
	_, err := f.Fetch(context.Background(), "http://example.com/p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 endpoints failed")
}
