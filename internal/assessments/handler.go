package assessments

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the public assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.listQuestions)
	rg.POST("/assessments", h.createAssessment)
	rg.GET("/assessments/:id", h.getAssessment)
}

// RegisterAdminRoutes attaches routes meant for the marketing team only.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessments", h.listAssessments)
}

func (h *Handler) listQuestions(c *gin.Context) {
	respond.OK(c, gin.H{"questions": h.Svc.Questions})
}

func (h *Handler) createAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Responses) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "responses are required", []map[string]string{
			{"field": "responses", "issue": "required"},
		})
		return
	}
	if details := validateRatings(h.Svc.Questions, req.Responses); len(details) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ratings out of range", details)
		return
	}

	assessment, scores, err := h.Svc.Submit(c.Request.Context(), req.Responses, Metadata{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Industry:    req.Industry,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save assessment", nil)
		return
	}
	c.Set("assessmentId", assessment.ID)

	respond.Created(c, CreateAssessmentResponse{
		AssessmentID: assessment.ID,
		Scores:       scores,
		ScoreLabel:   ScoreLabel(scores.Percentage),
	})
}

func (h *Handler) getAssessment(c *gin.Context) {
	assessmentID := c.Param("id")
	if assessmentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "assessment id is required", nil)
		return
	}

	assessment, scores, recs, err := h.Svc.Get(c.Request.Context(), assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}
	c.Set("assessmentId", assessment.ID)

	respond.OK(c, AssessmentResponse{
		AssessmentID:    assessment.ID,
		Responses:       assessment.Responses,
		Scores:          scores,
		ScoreLabel:      ScoreLabel(scores.Percentage),
		Recommendations: recs,
		CompanyName:     assessment.CompanyName,
		Email:           assessment.Email,
		Industry:        assessment.Industry,
		CreatedAt:       assessment.CreatedAt,
	})
}

func (h *Handler) listAssessments(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		return
	}

	resp := make([]AssessmentSummary, 0, len(items))
	for _, a := range items {
		resp = append(resp, AssessmentSummary{
			AssessmentID: a.ID,
			TotalScore:   a.TotalScore,
			CompanyName:  a.CompanyName,
			Industry:     a.Industry,
			CreatedAt:    a.CreatedAt,
		})
	}
	respond.OK(c, resp)
}

// validateRatings rejects ratings outside [0, maxScore] for known questions.
// Unknown keys pass through untouched; the calculator never reads them.
func validateRatings(questions []Question, responses Responses) []map[string]string {
	var details []map[string]string
	for _, q := range questions {
		rating, ok := responses[q.ID]
		if !ok {
			continue
		}
		if rating < 0 || rating > q.MaxScore {
			details = append(details, map[string]string{
				"field": "responses." + q.ID,
				"issue": fmt.Sprintf("must be between 0 and %d", q.MaxScore),
			})
		}
	}
	return details
}
