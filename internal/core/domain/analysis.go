package domain

// Pacing classifications derived from sentence-structure heuristics.
const (
	PacingFast   = "fast"
	PacingMedium = "medium"
	PacingSlow   = "slow"
)

// ScriptAnalysis is the immutable result of analyzing one script.
// DetectedMood equals AllDetectedMoods[0] when that list is non-empty,
// otherwise it is derived from sentiment. DetectedTheme equals
// AllDetectedThemes[0] when non-empty, otherwise "general".
type ScriptAnalysis struct {
	DetectedMood      string   `json:"detected_mood"`
	DetectedTheme     string   `json:"detected_theme"`
	Pacing            string   `json:"pacing"`
	SentimentScore    float64  `json:"sentiment_score"`
	Keywords          []string `json:"keywords"`
	AllDetectedMoods  []string `json:"all_detected_moods"`
	AllDetectedThemes []string `json:"all_detected_themes"`
}

// Sentiment is the output of the sentiment feature source.
type Sentiment struct {
	Polarity     float64 // [-1, 1]
	Subjectivity float64 // [0, 1]
}

// TaggedToken is one token with its part-of-speech tag (Penn treebank).
type TaggedToken struct {
	Text string
	Tag  string
}
