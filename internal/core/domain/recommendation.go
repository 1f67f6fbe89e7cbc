package domain

import "strings"

// Duration bounds for a short, in seconds, inclusive.
const (
	MinShortDuration = 15
	MaxShortDuration = 60
)

// UnknownArtist is the sentinel used when a track carries no artist data.
const UnknownArtist = "Unknown Artist"

// API status values reported in SearchInfo.
const (
	APIStatusActive   = "active"
	APIStatusMockMode = "mock_mode"
)

// MusicRecommendation is a single ranked track suggestion.
type MusicRecommendation struct {
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	YouTubeMusicID  string  `json:"youtube_music_id"`
	ConfidenceScore float64 `json:"confidence_score"`
	Reason          string  `json:"reason"`
	Duration        int     `json:"duration"`
	LoopSuitable    bool    `json:"loop_suitable"`
}

// RecommendationRequest holds the parameters for one recommendation call.
type RecommendationRequest struct {
	Script          string `json:"script"`
	Duration        int    `json:"duration"`
	GenrePreference string `json:"genre_preference"`
	MoodPreference  string `json:"mood_preference"`
	ContentType     string `json:"content_type"`
}

// ApplyDefaults fills the optional preference fields with their sentinels.
func (r *RecommendationRequest) ApplyDefaults() {
	if r.GenrePreference == "" {
		r.GenrePreference = PreferenceAny
	}
	if r.MoodPreference == "" {
		r.MoodPreference = PreferenceAny
	}
	if r.ContentType == "" {
		r.ContentType = ContentTypeOther
	}
}

// Validate checks the request before any analysis runs. A failure here means
// the whole request is rejected; nothing is partially processed.
func (r RecommendationRequest) Validate() error {
	if strings.TrimSpace(r.Script) == "" {
		return &InvalidInputError{Field: "script", Reason: "script cannot be empty"}
	}
	if r.Duration < MinShortDuration || r.Duration > MaxShortDuration {
		return &InvalidInputError{Field: "duration", Reason: "duration must be between 15 and 60 seconds"}
	}
	if !IsGenre(r.GenrePreference) {
		return &InvalidInputError{Field: "genre_preference", Reason: "unknown genre " + r.GenrePreference}
	}
	if !IsMood(r.MoodPreference) {
		return &InvalidInputError{Field: "mood_preference", Reason: "unknown mood " + r.MoodPreference}
	}
	if !IsContentType(r.ContentType) {
		return &InvalidInputError{Field: "content_type", Reason: "unknown content type " + r.ContentType}
	}
	return nil
}

// InputParameters echoes the request back to the caller.
type InputParameters struct {
	ScriptLength    int    `json:"script_length"`
	Duration        int    `json:"duration"`
	GenrePreference string `json:"genre_preference"`
	MoodPreference  string `json:"mood_preference"`
	ContentType     string `json:"content_type"`
}

// SearchInfo describes how the recommendations were produced.
type SearchInfo struct {
	SearchTermsUsed      []string `json:"search_terms_used"`
	TotalRecommendations int      `json:"total_recommendations"`
	APIStatus            string   `json:"api_status"`
}

// RecommendationResponse is the complete payload for one request.
type RecommendationResponse struct {
	Analysis        ScriptAnalysis        `json:"analysis"`
	Recommendations []MusicRecommendation `json:"recommendations"`
	InputParameters InputParameters       `json:"input_parameters"`
	SearchInfo      SearchInfo            `json:"search_info"`
}
