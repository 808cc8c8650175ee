package services

import (
	"context"
	"fmt"
	"math"

	"apoorvcs/resume-matcher/internal/models"
)

type MatcherService interface {
	GenerateMatchReport(ctx context.Context, jdText, resumeText string) (*models.MatchReport, error)
}

type matcherService struct {
	phraseService     PhraseService
	topMatches        int
	coverageThreshold float64
	maxPhrases        int
}

func NewMatcherService(
	phraseService PhraseService,
	topMatches int,
	coverageThreshold float64,
	maxPhrases int,
) MatcherService {
	return &matcherService{
		phraseService:     phraseService,
		topMatches:        topMatches,
		coverageThreshold: coverageThreshold,
		maxPhrases:        maxPhrases,
	}
}

// GenerateMatchReport implements MatcherService. It extracts key
// phrases from both documents, aligns resume phrases to their best
// job description counterparts and scales JD coverage to a 0..100
// overall score. Phrase lists are capped to keep the response small.
func (m *matcherService) GenerateMatchReport(ctx context.Context, jdText, resumeText string) (*models.MatchReport, error) {
	jdPhrases, err := m.phraseService.ExtractKeyPhrases(ctx, jdText)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job description phrases: %w", err)
	}

	resumePhrases, err := m.phraseService.ExtractKeyPhrases(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume phrases: %w", err)
	}

	pairs := BestPairs(resumePhrases, jdPhrases, m.topMatches)
	for i := range pairs {
		pairs[i].Score = round2(pairs[i].Score)
	}
	if pairs == nil {
		pairs = []models.MatchPair{}
	}

	coverage := Coverage(jdPhrases, resumePhrases, m.coverageThreshold)

	return &models.MatchReport{
		OverallMatchScore: round2(coverage * 100),
		JDKeyPhrases:      capPhrases(jdPhrases, m.maxPhrases),
		ResumeKeyPhrases:  capPhrases(resumePhrases, m.maxPhrases),
		TopMatches:        pairs,
	}, nil
}

// rounds half-even: an exact tie like 0.125 rounds down to 0.12.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func capPhrases(phrases []string, max int) []string {
	if phrases == nil {
		return []string{}
	}
	if len(phrases) > max {
		return phrases[:max]
	}
	return phrases
}
