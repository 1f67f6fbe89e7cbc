package ytmusic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
)

const searchFixture = `{
	"results": [
		{
			"videoId": "vid-1",
			"title": "Calm Piano Background",
			"artists": [{"name": "Study Beats"}, {"name": "Second Artist"}],
			"duration_seconds": 95
		},
		{
			"videoId": "vid-2",
			"title": "Untimed Upload",
			"artists": []
		}
	]
}`

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(baseURL string) *Client {
	return NewClient(config.CatalogConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		MaxRetries:     3,
		RetryBackoffMs: 1,
	}, testLogger())
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotFilter, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotFilter = r.URL.Query().Get("filter")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	c := testClient(server.URL)
	tracks, err := c.Search(context.Background(), "calm background music", ports.FilterSongs, 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "calm background music" || gotFilter != "songs" || gotLimit != "10" {
		t.Errorf("query params = (%q, %q, %q)", gotQuery, gotFilter, gotLimit)
	}

	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}
	first := tracks[0]
	if first.ID != "vid-1" || first.Title != "Calm Piano Background" || first.DurationSeconds != 95 {
		t.Errorf("first track = %+v", first)
	}
	if len(first.Artists) != 2 || first.Artists[0] != "Study Beats" {
		t.Errorf("first track artists = %v", first.Artists)
	}
	if tracks[1].HasDuration() {
		t.Error("track without duration_seconds reported HasDuration")
	}
}

func TestClient_SearchRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	c := testClient(server.URL)
	tracks, err := c.Search(context.Background(), "lofi", ports.FilterSongs, 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server calls = %d, want 2", got)
	}
}

func TestClient_SearchNonRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := testClient(server.URL)
	if _, err := c.Search(context.Background(), "lofi", ports.FilterSongs, 5); err == nil {
		t.Fatal("Search() error = nil, want status error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server calls = %d, want 1 (404 must not be retried)", got)
	}
}

func TestClient_SearchExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := testClient(server.URL)
	if _, err := c.Search(context.Background(), "lofi", ports.FilterSongs, 5); err == nil {
		t.Fatal("Search() error = nil, want exhausted-retries error")
	}
}

func TestClient_SearchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := testClient(server.URL)
	if _, err := c.Search(context.Background(), "lofi", ports.FilterSongs, 5); err == nil {
		t.Fatal("Search() error = nil, want decode error")
	}
}
