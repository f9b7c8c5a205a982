package assessments

import (
	"time"

	"assessment-backend/internal/assessments/recommendations"
)

// CreateAssessmentRequest is the submission payload.
type CreateAssessmentRequest struct {
	Responses   Responses `json:"responses"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	Industry    string    `json:"industry"`
}

// CreateAssessmentResponse is returned after a successful submission.
type CreateAssessmentResponse struct {
	AssessmentID string         `json:"assessmentId"`
	Scores       ScoreBreakdown `json:"scores"`
	ScoreLabel   string         `json:"scoreLabel"`
}

// AssessmentResponse is the outward-facing representation of a stored
// assessment; scores and recommendations are recomputed per request.
type AssessmentResponse struct {
	AssessmentID    string                            `json:"assessmentId"`
	Responses       Responses                         `json:"responses"`
	Scores          ScoreBreakdown                    `json:"scores"`
	ScoreLabel      string                            `json:"scoreLabel"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	CompanyName     string                            `json:"companyName,omitempty"`
	Email           string                            `json:"email,omitempty"`
	Industry        string                            `json:"industry,omitempty"`
	CreatedAt       time.Time                         `json:"createdAt"`
}

// AssessmentSummary is the admin listing item.
type AssessmentSummary struct {
	AssessmentID string    `json:"assessmentId"`
	TotalScore   int       `json:"totalScore"`
	CompanyName  string    `json:"companyName,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
