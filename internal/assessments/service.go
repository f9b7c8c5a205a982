package assessments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/assessments/recommendations"
	"assessment-backend/internal/shared/metrics"
)

// Service coordinates scoring, recommendation generation, and persistence.
// The catalog is fixed at construction and never mutated, so methods are
// safe to call concurrently.
type Service struct {
	Repo      Repo
	Questions []Question
}

// NewService constructs a Service over the given catalog.
func NewService(repo Repo, questions []Question) *Service {
	return &Service{Repo: repo, Questions: questions}
}

// Submit scores the responses, persists the record under a fresh ID, and
// returns the stored assessment with its breakdown.
func (s *Service) Submit(ctx context.Context, responses Responses, meta Metadata) (Assessment, ScoreBreakdown, error) {
	started := time.Now()
	scores := CalculateScores(s.Questions, responses)

	assessment := Assessment{
		ID:           uuid.NewString(),
		Responses:    responses,
		TotalScore:   scores.TotalScore,
		WebsiteScore: scores.WebsiteScore,
		SocialScore:  scores.SocialScore,
		AdScore:      scores.AdScore,
		CompanyName:  meta.CompanyName,
		Email:        meta.Email,
		Industry:     meta.Industry,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, assessment); err != nil {
		return Assessment{}, ScoreBreakdown{}, fmt.Errorf("create assessment: %w", err)
	}

	metrics.IncAssessmentSubmitted()
	metrics.ObserveScoringDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return assessment, scores, nil
}

// Get fetches a stored assessment and recomputes its breakdown and
// recommendations from the raw responses.
func (s *Service) Get(ctx context.Context, assessmentID string) (Assessment, ScoreBreakdown, []recommendations.Recommendation, error) {
	assessment, err := s.Repo.GetByID(ctx, assessmentID)
	if err != nil {
		return Assessment{}, ScoreBreakdown{}, nil, err
	}

	scores := CalculateScores(s.Questions, assessment.Responses)
	recs := recommendations.Generate(engineQuestions(s.Questions), assessment.Responses, engineBreakdown(scores))
	metrics.IncAssessmentFetched()
	return assessment, scores, recs, nil
}

// List returns stored assessments, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Assessment, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Recommend generates recommendations for arbitrary responses without
// touching storage.
func (s *Service) Recommend(responses Responses) (ScoreBreakdown, []recommendations.Recommendation) {
	scores := CalculateScores(s.Questions, responses)
	recs := recommendations.Generate(engineQuestions(s.Questions), responses, engineBreakdown(scores))
	return scores, recs
}

func engineQuestions(questions []Question) []recommendations.Question {
	out := make([]recommendations.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, recommendations.Question{
			ID:          q.ID,
			Category:    q.Category,
			Channel:     recommendations.Channel(q.Channel),
			Text:        q.Text,
			Description: q.Description,
			MaxScore:    q.MaxScore,
		})
	}
	return out
}

func engineBreakdown(scores ScoreBreakdown) recommendations.Breakdown {
	return recommendations.Breakdown{
		TotalScore:        scores.TotalScore,
		WebsiteScore:      scores.WebsiteScore,
		SocialScore:       scores.SocialScore,
		AdScore:           scores.AdScore,
		Percentage:        scores.Percentage,
		WebsitePercentage: scores.WebsitePercentage,
		SocialPercentage:  scores.SocialPercentage,
		AdPercentage:      scores.AdPercentage,
	}
}
