package query

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET GRADE DISTRIBUTION QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetGradeDistributionQuery contains the parameters of a distribution
// request. CourseID is optional; nil means all courses.
type GetGradeDistributionQuery struct {
	CourseID *int64
}

// Validate checks the query parameters.
func (q GetGradeDistributionQuery) Validate() error {
	if q.CourseID != nil && *q.CourseID <= 0 {
		return shared.ErrMissingCourseRef
	}
	return nil
}

// GradeDistributionDTO carries the per-letter counts. Every letter A..E is
// present, zero-filled when not awarded.
type GradeDistributionDTO struct {
	CourseID *int64               `json:"course_id,omitempty"`
	Counts   map[grade.Letter]int `json:"counts"`
	Total    int                  `json:"total"`
}

// GetGradeDistributionHandler handles distribution queries.
type GetGradeDistributionHandler struct {
	grades grade.Repository
	log    *logger.Logger
}

// NewGetGradeDistributionHandler creates the handler. log may be nil.
func NewGetGradeDistributionHandler(grades grade.Repository, log *logger.Logger) *GetGradeDistributionHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GetGradeDistributionHandler{
		grades: grades,
		log:    log.With(logger.Component("query.get_grade_distribution")),
	}
}

// Handle returns the grade distribution, optionally scoped to one course.
func (h *GetGradeDistributionHandler) Handle(ctx context.Context, q GetGradeDistributionQuery) (*GradeDistributionDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	dist, err := h.grades.Distribution(ctx, q.CourseID)
	if err != nil {
		return nil, err
	}

	return &GradeDistributionDTO{
		CourseID: q.CourseID,
		Counts:   dist,
		Total:    dist.Total(),
	}, nil
}
