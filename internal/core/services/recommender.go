package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

const baseScore = 0.5

// instrumentalMarkers in a title earn a bonus; background-style tracks loop
// better under narration.
var instrumentalMarkers = []string{"instrumental", "background", "bgm"}

// Recommender turns a script analysis into ranked track recommendations.
type Recommender struct {
	searcher *Searcher
	cfg      config.AudioConfig
	log      *logrus.Logger
}

// NewRecommender constructs a Recommender.
func NewRecommender(searcher *Searcher, cfg config.AudioConfig, log *logrus.Logger) *Recommender {
	return &Recommender{
		searcher: searcher,
		cfg:      cfg,
		log:      log,
	}
}

// GenerateSearchTerms builds catalog queries from the analysis and the user
// preferences. Base terms come first so they survive truncation; genre and
// pacing terms follow in that order.
func (r *Recommender) GenerateSearchTerms(analysis domain.ScriptAnalysis, genrePref string, moodPref string) []string {
	primaryMood := effectiveMood(analysis, moodPref)

	terms := []string{
		fmt.Sprintf("%s background music", primaryMood),
		fmt.Sprintf("%s music", analysis.DetectedTheme),
	}

	if genrePref != domain.PreferenceAny {
		terms = append(terms,
			fmt.Sprintf("%s %s", genrePref, primaryMood),
			fmt.Sprintf("%s instrumental", genrePref),
		)
	}

	switch analysis.Pacing {
	case domain.PacingFast:
		terms = append(terms, "upbeat instrumental", "energetic background")
	case domain.PacingSlow:
		terms = append(terms, "calm instrumental", "ambient background")
	}

	return truncate(terms, r.cfg.MaxSearchTerms)
}

// GetRecommendations fetches candidate tracks and returns them scored,
// sorted by descending confidence and capped at the configured maximum.
// The sort is stable: candidates with equal scores keep catalog order.
func (r *Recommender) GetRecommendations(ctx context.Context, analysis domain.ScriptAnalysis, genrePref string, moodPref string, duration int) []domain.MusicRecommendation {
	terms := r.GenerateSearchTerms(analysis, genrePref, moodPref)
	r.log.WithField("terms", terms).Info("Generated search terms")

	tracks := r.searcher.SearchTracks(ctx, terms, duration)
	r.log.WithField("count", len(tracks)).Info("Found candidate tracks")

	recommendations := make([]domain.MusicRecommendation, 0, len(tracks))
	for _, track := range tracks {
		score := matchScore(track, analysis, genrePref, moodPref)
		recommendations = append(recommendations, buildRecommendation(track, analysis, score))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ConfidenceScore > recommendations[j].ConfidenceScore
	})

	if len(recommendations) > r.cfg.MaxRecommendations {
		recommendations = recommendations[:r.cfg.MaxRecommendations]
	}
	return recommendations
}

// matchScore estimates how well a track fits the analyzed script. All
// signals are additive on a 0.5 base and the result is capped at 1.0.
func matchScore(track domain.Track, analysis domain.ScriptAnalysis, genrePref string, moodPref string) float64 {
	score := baseScore
	titleLower := strings.ToLower(track.Title)

	if strings.Contains(titleLower, effectiveMood(analysis, moodPref)) {
		score += 0.3
	}

	if strings.Contains(titleLower, analysis.DetectedTheme) {
		score += 0.2
	}

	for _, keyword := range truncate(analysis.Keywords, 5) {
		if strings.Contains(titleLower, keyword) {
			score += 0.1
		}
	}

	for _, marker := range instrumentalMarkers {
		if strings.Contains(titleLower, marker) {
			score += 0.2
			break
		}
	}

	if genrePref != domain.PreferenceAny && strings.Contains(titleLower, genrePref) {
		score += 0.15
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func buildRecommendation(track domain.Track, analysis domain.ScriptAnalysis, score float64) domain.MusicRecommendation {
	title := track.Title
	if title == "" {
		title = "Unknown Title"
	}

	duration := track.DurationSeconds
	if duration <= 0 {
		duration = 30
	}

	return domain.MusicRecommendation{
		Title:           title,
		Artist:          extractArtist(track),
		YouTubeMusicID:  track.ID,
		ConfidenceScore: score,
		Reason:          recommendationReason(analysis, score),
		Duration:        duration,
		LoopSuitable:    duration >= domain.MinShortDuration,
	}
}

// recommendationReason labels the score band and names the mood (and theme,
// when one was detected) that drove the match.
func recommendationReason(analysis domain.ScriptAnalysis, score float64) string {
	var matchLevel string
	switch {
	case score > 0.8:
		matchLevel = "Strong match"
	case score > 0.6:
		matchLevel = "Good match"
	default:
		matchLevel = "Moderate match"
	}

	parts := []string{matchLevel, fmt.Sprintf("for %s mood", analysis.DetectedMood)}
	if analysis.DetectedTheme != domain.ThemeGeneral {
		parts = append(parts, fmt.Sprintf("and %s content", analysis.DetectedTheme))
	}
	return strings.Join(parts, " ")
}

func extractArtist(track domain.Track) string {
	if len(track.Artists) == 0 || track.Artists[0] == "" {
		return domain.UnknownArtist
	}
	return track.Artists[0]
}

// effectiveMood is the mood preference when one was given, otherwise the
// detected mood.
func effectiveMood(analysis domain.ScriptAnalysis, moodPref string) string {
	if moodPref != domain.PreferenceAny {
		return moodPref
	}
	return analysis.DetectedMood
}
