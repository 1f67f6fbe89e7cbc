package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

// Orchestrator coordinates the full request pipeline: validation, script
// analysis, catalog search and scoring, then response assembly. Everything
// it produces is request-scoped; no state survives a call.
type Orchestrator struct {
	analyzer    *Analyzer
	searcher    *Searcher
	recommender *Recommender
	log         *logrus.Logger
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(analyzer *Analyzer, searcher *Searcher, recommender *Recommender, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		analyzer:    analyzer,
		searcher:    searcher,
		recommender: recommender,
		log:         log,
	}
}

// Recommend validates the request, analyzes the script and returns the
// complete recommendation payload. Validation failures surface as
// domain.ErrInvalidInput before any analysis work runs.
func (o *Orchestrator) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.RecommendationResponse{}, err
	}

	o.log.WithFields(logrus.Fields{
		"content_type": req.ContentType,
		"duration":     req.Duration,
	}).Info("Processing recommendation request")

	analysis, err := o.analyzer.Analyze(req.Script)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	recommendations := o.recommender.GetRecommendations(ctx, analysis, req.GenrePreference, req.MoodPreference, req.Duration)

	apiStatus := domain.APIStatusMockMode
	if o.searcher.Live() {
		apiStatus = domain.APIStatusActive
	}

	o.log.WithField("count", len(recommendations)).Info("Returning recommendations")

	return domain.RecommendationResponse{
		Analysis:        analysis,
		Recommendations: recommendations,
		InputParameters: domain.InputParameters{
			ScriptLength:    len(req.Script),
			Duration:        req.Duration,
			GenrePreference: req.GenrePreference,
			MoodPreference:  req.MoodPreference,
			ContentType:     req.ContentType,
		},
		SearchInfo: domain.SearchInfo{
			SearchTermsUsed:      o.recommender.GenerateSearchTerms(analysis, req.GenrePreference, req.MoodPreference),
			TotalRecommendations: len(recommendations),
			APIStatus:            apiStatus,
		},
	}, nil
}

// Analyze runs the script analysis alone, without touching the catalog.
func (o *Orchestrator) Analyze(ctx context.Context, script string) (domain.ScriptAnalysis, error) {
	return o.analyzer.Analyze(script)
}
