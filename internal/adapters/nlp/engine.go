// Package nlp provides the text feature source behind the sentiment and
// tagging ports: VADER sentiment scoring via govader and Penn-treebank
// part-of-speech tagging via prose.
package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/jonreiter/govader"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
)

// Engine implements the sentiment and tagging ports over local models; no
// network calls are involved.
type Engine struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// compile-time interface assertions
var (
	_ ports.SentimentAnalyzer = (*Engine)(nil)
	_ ports.Tagger            = (*Engine)(nil)
)

// NewEngine constructs an Engine. The VADER lexicon is loaded once here and
// shared across requests; it is read-only after construction.
func NewEngine() *Engine {
	return &Engine{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// AnalyzeSentiment scores the text with VADER. Polarity is the compound
// score in [-1, 1]; subjectivity is the non-neutral proportion of the text.
func (e *Engine) AnalyzeSentiment(text string) (domain.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Sentiment{}, fmt.Errorf("nlp: empty text")
	}

	scores := e.analyzer.PolarityScores(text)
	return domain.Sentiment{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(1-scores.Neutral, 0, 1),
	}, nil
}

// Tag tokenizes the text and returns part-of-speech tagged tokens.
func (e *Engine) Tag(text string) ([]domain.TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nlp: tag: %w", err)
	}

	tokens := doc.Tokens()
	tagged := make([]domain.TaggedToken, 0, len(tokens))
	for _, token := range tokens {
		tagged = append(tagged, domain.TaggedToken{Text: token.Text, Tag: token.Tag})
	}
	return tagged, nil
}

func clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
