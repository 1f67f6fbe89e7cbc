package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

// fakeCatalog is an in-memory catalog client for tests.
type fakeCatalog struct {
	results   map[string][]domain.Track
	errOnTerm string
	calls     []string
}

func (f *fakeCatalog) Search(ctx context.Context, term string, filter string, limit int) ([]domain.Track, error) {
	f.calls = append(f.calls, term)
	if term == f.errOnTerm {
		return nil, errors.New("catalog unavailable")
	}
	return f.results[term], nil
}

func testAudioConfig() config.AudioConfig {
	return config.DefaultConfig().Audio
}

func TestSearcher_MockModeWithoutClient(t *testing.T) {
	s := NewSearcher(nil, testAudioConfig(), testLogger())

	if s.Live() {
		t.Fatal("Live() = true for nil client")
	}

	tracks := s.SearchTracks(context.Background(), []string{"calm background music"}, 30)
	if len(tracks) != 3 {
		t.Fatalf("len(tracks) = %d, want 3 placeholders", len(tracks))
	}

	wantDurations := map[string]int{
		"mock_id_1": 45, // min(45, 30+15)
		"mock_id_2": 60, // min(60, 30+30)
		"mock_id_3": 30, // max(30, 30)
	}
	for _, track := range tracks {
		want, ok := wantDurations[track.ID]
		if !ok {
			t.Fatalf("unexpected placeholder id %q", track.ID)
		}
		if track.DurationSeconds != want {
			t.Errorf("placeholder %s duration = %d, want %d", track.ID, track.DurationSeconds, want)
		}
	}
}

func TestSearcher_PlaceholderDurationsFollowTarget(t *testing.T) {
	s := NewSearcher(nil, testAudioConfig(), testLogger())

	tracks := s.SearchTracks(context.Background(), nil, 15)
	want := map[string]int{"mock_id_1": 30, "mock_id_2": 45, "mock_id_3": 30}
	for _, track := range tracks {
		if track.DurationSeconds != want[track.ID] {
			t.Errorf("placeholder %s duration = %d, want %d", track.ID, track.DurationSeconds, want[track.ID])
		}
	}
}

func TestSearcher_SuitabilityFilter(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]domain.Track{
		"calm music": {
			{ID: "short", Title: "Too Short", DurationSeconds: 20},
			{ID: "long", Title: "Too Long", DurationSeconds: 400},
			{ID: "fits", Title: "Just Right", DurationSeconds: 45},
			{ID: "unknown", Title: "No Duration"},
		},
	}}
	s := NewSearcher(catalog, testAudioConfig(), testLogger())

	tracks := s.SearchTracks(context.Background(), []string{"calm music"}, 30)

	got := make(map[string]bool, len(tracks))
	for _, track := range tracks {
		got[track.ID] = true
	}
	if got["short"] || got["long"] {
		t.Errorf("unsuitable tracks survived the filter: %v", got)
	}
	if !got["fits"] {
		t.Error("track within bounds was filtered out")
	}
	if !got["unknown"] {
		t.Error("track without a reported duration was filtered out")
	}
}

func TestSearcher_DeduplicatesByID(t *testing.T) {
	shared := domain.Track{ID: "dup", Title: "Same Track", DurationSeconds: 60}
	catalog := &fakeCatalog{results: map[string][]domain.Track{
		"term one": {shared, {Title: "No ID", DurationSeconds: 60}},
		"term two": {shared, {ID: "other", Title: "Other", DurationSeconds: 60}},
	}}
	s := NewSearcher(catalog, testAudioConfig(), testLogger())

	tracks := s.SearchTracks(context.Background(), []string{"term one", "term two"}, 30)

	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2 (dedup by id, drop empty ids)", len(tracks))
	}
	if tracks[0].ID != "dup" || tracks[1].ID != "other" {
		t.Fatalf("tracks out of first-seen order: %q, %q", tracks[0].ID, tracks[1].ID)
	}
}

func TestSearcher_TruncatesToMaxResults(t *testing.T) {
	var many []domain.Track
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		many = append(many, domain.Track{ID: id, Title: "Track " + id, DurationSeconds: 60})
	}
	catalog := &fakeCatalog{results: map[string][]domain.Track{"term": many}}

	cfg := testAudioConfig()
	cfg.MaxSearchResults = 3
	s := NewSearcher(catalog, cfg, testLogger())

	tracks := s.SearchTracks(context.Background(), []string{"term"}, 30)
	if len(tracks) != 3 {
		t.Fatalf("len(tracks) = %d, want 3", len(tracks))
	}
	if tracks[0].ID != "a" || tracks[2].ID != "c" {
		t.Fatalf("truncation reordered results: %+v", tracks)
	}
}

// TestSearcher_FailFastToPlaceholders verifies that a failure on any term
// discards results already gathered from earlier terms.
func TestSearcher_FailFastToPlaceholders(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]domain.Track{
			"good term": {{ID: "real", Title: "Real Track", DurationSeconds: 60}},
		},
		errOnTerm: "bad term",
	}
	s := NewSearcher(catalog, testAudioConfig(), testLogger())

	tracks := s.SearchTracks(context.Background(), []string{"good term", "bad term"}, 30)

	if len(tracks) != 3 {
		t.Fatalf("len(tracks) = %d, want the 3 placeholders", len(tracks))
	}
	for _, track := range tracks {
		if track.ID == "real" {
			t.Fatal("partial results from the successful term were not discarded")
		}
	}
	if len(catalog.calls) != 2 {
		t.Fatalf("calls = %v, want both terms attempted", catalog.calls)
	}
}
