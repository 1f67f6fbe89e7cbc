package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/domain"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
)

// Searcher wraps the catalog client with duration filtering, de-duplication
// and the placeholder fallback. A nil client is valid and means mock mode.
type Searcher struct {
	client ports.CatalogClient
	cfg    config.AudioConfig
	log    *logrus.Logger
}

// NewSearcher constructs a Searcher. client may be nil when no catalog is
// configured.
func NewSearcher(client ports.CatalogClient, cfg config.AudioConfig, log *logrus.Logger) *Searcher {
	return &Searcher{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// Live reports whether a real catalog client is configured.
func (s *Searcher) Live() bool {
	return s.client != nil
}

// SearchTracks queries the catalog for every term and returns the suitable,
// de-duplicated candidates. Any catalog failure aborts the whole multi-term
// search and substitutes the placeholder set; partial results are discarded
// rather than returned as a misleading subset.
func (s *Searcher) SearchTracks(ctx context.Context, terms []string, targetDuration int) []domain.Track {
	if s.client == nil {
		s.log.Info("No catalog client configured, using placeholder tracks")
		return placeholderTracks(targetDuration)
	}

	var results []domain.Track
	for _, term := range terms {
		s.log.WithField("term", term).Debug("Searching catalog")
		found, err := s.client.Search(ctx, term, ports.FilterSongs, s.cfg.SearchLimitPerTerm)
		if err != nil {
			s.log.WithError(err).Error("Catalog search failed, using placeholder tracks")
			return placeholderTracks(targetDuration)
		}
		for _, track := range found {
			if s.suitableForShorts(track, targetDuration) {
				results = append(results, track)
			}
		}
	}

	return truncateTracks(deduplicateTracks(results), s.cfg.MaxSearchResults)
}

// suitableForShorts accepts a track whose reported duration can cover the
// target without exceeding the configured maximum. Tracks without a reported
// duration are accepted; there is nothing to filter on.
func (s *Searcher) suitableForShorts(track domain.Track, targetDuration int) bool {
	if !track.HasDuration() {
		return true
	}
	return track.DurationSeconds >= targetDuration && track.DurationSeconds <= s.cfg.MaxDurationSeconds
}

// deduplicateTracks keeps the first occurrence of each catalog ID. Tracks
// without an ID are dropped.
func deduplicateTracks(tracks []domain.Track) []domain.Track {
	seen := make(map[string]struct{}, len(tracks))
	unique := make([]domain.Track, 0, len(tracks))
	for _, track := range tracks {
		if track.ID == "" {
			continue
		}
		if _, dup := seen[track.ID]; dup {
			continue
		}
		seen[track.ID] = struct{}{}
		unique = append(unique, track)
	}
	return unique
}

func truncateTracks(tracks []domain.Track, limit int) []domain.Track {
	if len(tracks) > limit {
		return tracks[:limit]
	}
	return tracks
}

// placeholderTracks is the fixed fallback set used when no catalog is
// available. Durations are deterministic functions of the requested duration
// so downstream filtering and scoring still have something to chew on.
func placeholderTracks(duration int) []domain.Track {
	return []domain.Track{
		{
			ID:              "mock_id_1",
			Title:           "Uplifting Corporate Background",
			Artists:         []string{"Audio Library"},
			DurationSeconds: minInt(45, duration+15),
		},
		{
			ID:              "mock_id_2",
			Title:           "Motivational Instrumental",
			Artists:         []string{"Background Music"},
			DurationSeconds: minInt(60, duration+30),
		},
		{
			ID:              "mock_id_3",
			Title:           "Energetic Pop Background",
			Artists:         []string{"Royalty Free"},
			DurationSeconds: maxInt(30, duration),
		},
	}
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
