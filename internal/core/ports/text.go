package ports

import "github.com/ewilliams-labs/findbgm/internal/core/domain"

// SentimentAnalyzer scores the polarity and subjectivity of a text.
// Failures must be absorbed by the caller with a neutral fallback;
// sentiment is a soft signal.
type SentimentAnalyzer interface {
	AnalyzeSentiment(text string) (domain.Sentiment, error)
}

// Tagger produces part-of-speech tags for a text. On failure the caller
// falls back to plain whitespace tokenization.
type Tagger interface {
	Tag(text string) ([]domain.TaggedToken, error)
}
