// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TRANSCRIPT QUERY
// Assembles a student's transcript document. The cache is optional; a miss
// or a nil cache falls through to the repositories, which always read fresh.
// ══════════════════════════════════════════════════════════════════════════════

// GetTranscriptQuery contains the parameters of a transcript request.
type GetTranscriptQuery struct {
	// StudentID is the surrogate id of the student.
	StudentID int64
}

// Validate checks the query parameters.
func (q GetTranscriptQuery) Validate() error {
	if q.StudentID <= 0 {
		return shared.ErrMissingStudentRef
	}
	return nil
}

// TranscriptDTO is the transcript document handed to callers. Reference is
// a fresh document number per issued transcript, even when the underlying
// data came from cache.
type TranscriptDTO struct {
	Reference    string               `json:"reference"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Student      TranscriptStudentDTO `json:"student"`
	Grades       []grade.StudentGrade `json:"grades"`
	TotalCredits int                  `json:"total_credits"`
	GPA          float64              `json:"gpa"`
}

// TranscriptStudentDTO is the student identity block of a transcript.
type TranscriptStudentDTO struct {
	ID    int64  `json:"id"`
	NIM   string `json:"nim"`
	Name  string `json:"name"`
	Major string `json:"major"`
}

// GetTranscriptHandler handles transcript queries.
type GetTranscriptHandler struct {
	grades grade.Repository
	cache  grade.TranscriptCache // may be nil
	log    *logger.Logger
}

// NewGetTranscriptHandler creates the handler. cache and log may be nil.
func NewGetTranscriptHandler(grades grade.Repository, cache grade.TranscriptCache, log *logger.Logger) *GetTranscriptHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GetTranscriptHandler{
		grades: grades,
		cache:  cache,
		log:    log.With(logger.Component("query.get_transcript")),
	}
}

// Handle assembles the transcript, preferring the cache when present.
// Returns shared.ErrStudentNotFound for an unknown student.
func (h *GetTranscriptHandler) Handle(ctx context.Context, q GetTranscriptQuery) (*TranscriptDTO, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	tr := h.fromCache(ctx, q.StudentID)
	cached := tr != nil
	if tr == nil {
		var err error
		tr, err = h.grades.Transcript(ctx, q.StudentID)
		if err != nil {
			return nil, err
		}
		if h.cache != nil {
			if err := h.cache.Set(ctx, q.StudentID, tr); err != nil {
				h.log.Warn("failed to cache transcript",
					logger.StudentID(q.StudentID), logger.Err(err))
			}
		}
	}

	h.log.Debug("transcript assembled",
		logger.StudentID(q.StudentID),
		logger.NIM(tr.Student.NIM.String()),
		logger.Bool("cached", cached),
		logger.Latency(time.Since(start)),
	)

	return &TranscriptDTO{
		Reference:   uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Student: TranscriptStudentDTO{
			ID:    tr.Student.ID,
			NIM:   tr.Student.NIM.String(),
			Name:  tr.Student.Name,
			Major: tr.Student.Major,
		},
		Grades:       tr.Grades,
		TotalCredits: tr.TotalCredits,
		GPA:          tr.GPA,
	}, nil
}

// fromCache returns the cached transcript or nil on miss, nil cache, or any
// cache failure. Cache trouble never fails the query.
func (h *GetTranscriptHandler) fromCache(ctx context.Context, studentID int64) *grade.Transcript {
	if h.cache == nil {
		return nil
	}
	tr, err := h.cache.Get(ctx, studentID)
	if err != nil || tr == nil || tr.Student == nil {
		return nil
	}
	return tr
}
