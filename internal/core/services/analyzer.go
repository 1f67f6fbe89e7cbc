package services

import (
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
)

// keywordTags are the part-of-speech tags kept during keyword extraction:
// nouns (singular/plural) and adjectives (base/comparative/superlative).
var keywordTags = map[string]struct{}{
	"NN":  {},
	"NNS": {},
	"JJ":  {},
	"JJR": {},
	"JJS": {},
}

const maxKeywords = 10

// Analyzer derives mood, theme, pacing, sentiment and keywords from raw
// script text. It holds no mutable state; the same script always yields the
// same analysis.
type Analyzer struct {
	sentiment ports.SentimentAnalyzer
	tagger    ports.Tagger
	log       *logrus.Logger
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(sentiment ports.SentimentAnalyzer, tagger ports.Tagger, log *logrus.Logger) *Analyzer {
	return &Analyzer{
		sentiment: sentiment,
		tagger:    tagger,
		log:       log,
	}
}

// Analyze inspects the script and returns its full analysis. The only error
// it returns is domain.ErrInvalidInput for a blank script; failures of the
// sentiment or tagging sources degrade to deterministic fallbacks instead.
func (a *Analyzer) Analyze(script string) (domain.ScriptAnalysis, error) {
	if strings.TrimSpace(script) == "" {
		return domain.ScriptAnalysis{}, &domain.InvalidInputError{Field: "script", Reason: "script cannot be empty"}
	}

	scriptLower := strings.ToLower(script)

	sentiment := a.analyzeSentiment(script)
	detectedMoods := detectCategories(scriptLower, domain.MoodKeywords)
	detectedThemes := detectCategories(scriptLower, domain.ThemeKeywords)
	pacing := classifyPacing(script)
	keywords := a.extractKeywords(script)

	primaryMood := primaryMood(detectedMoods, sentiment.Polarity)
	primaryTheme := domain.ThemeGeneral
	if len(detectedThemes) > 0 {
		primaryTheme = detectedThemes[0]
	}

	a.log.WithFields(logrus.Fields{
		"mood":   primaryMood,
		"theme":  primaryTheme,
		"pacing": pacing,
	}).Info("Script analysis complete")

	return domain.ScriptAnalysis{
		DetectedMood:      primaryMood,
		DetectedTheme:     primaryTheme,
		Pacing:            pacing,
		SentimentScore:    sentiment.Polarity,
		Keywords:          truncate(keywords, maxKeywords),
		AllDetectedMoods:  detectedMoods,
		AllDetectedThemes: detectedThemes,
	}, nil
}

// analyzeSentiment wraps the sentiment source with a neutral fallback.
func (a *Analyzer) analyzeSentiment(script string) domain.Sentiment {
	sentiment, err := a.sentiment.AnalyzeSentiment(script)
	if err != nil {
		a.log.WithError(err).Warn("Sentiment analysis failed, using neutral fallback")
		return domain.Sentiment{}
	}
	return sentiment
}

// detectCategories marks a category as detected when any of its keywords
// appears as a substring of the lower-cased script. Categories are visited
// in declaration order, which fixes detection precedence.
func detectCategories(scriptLower string, categories []domain.KeywordCategory) []string {
	var detected []string
	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(scriptLower, keyword) {
				detected = append(detected, category.Name)
				break
			}
		}
	}
	return detected
}

// classifyPacing buckets the script into fast/medium/slow from exclamation
// density and average sentence length.
func classifyPacing(script string) string {
	exclamations := strings.Count(script, "!")

	sentences := 0
	for _, segment := range strings.Split(script, ".") {
		if strings.TrimSpace(segment) != "" {
			sentences++
		}
	}

	words := len(strings.Fields(script))
	avgSentenceLength := float64(words) / float64(maxInt(sentences, 1))

	switch {
	case exclamations > 2 || avgSentenceLength < 8:
		return domain.PacingFast
	case avgSentenceLength > 15:
		return domain.PacingSlow
	default:
		return domain.PacingMedium
	}
}

// extractKeywords keeps nouns and adjectives longer than 3 characters. The
// primary path de-duplicates while preserving first-occurrence order; the
// whitespace fallback taken on tagger failure does not de-duplicate. That
// asymmetry is long-standing behavior and is pinned by tests.
func (a *Analyzer) extractKeywords(script string) []string {
	tokens, err := a.tagger.Tag(script)
	if err != nil {
		a.log.WithError(err).Warn("Keyword extraction failed, using whitespace fallback")
		return fallbackKeywords(script)
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, token := range tokens {
		if _, ok := keywordTags[token.Tag]; !ok {
			continue
		}
		if len(token.Text) <= 3 || !isAlpha(token.Text) {
			continue
		}
		word := strings.ToLower(token.Text)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}

func fallbackKeywords(script string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(script)) {
		if len(word) > 3 && isAlpha(word) {
			keywords = append(keywords, word)
		}
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// primaryMood picks the first keyword-detected mood, falling back to
// sentiment polarity thresholds when no mood keywords matched.
func primaryMood(detectedMoods []string, polarity float64) string {
	if len(detectedMoods) > 0 {
		return detectedMoods[0]
	}

	switch {
	case polarity < -0.1:
		return "dramatic"
	case polarity > 0.3:
		return "upbeat"
	case polarity > 0.1:
		return "motivational"
	default:
		return "calm"
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func truncate(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
