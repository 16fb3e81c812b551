// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// Records one graded enrollment. Validation and the duplicate guard run in
// the repository before any write; on success the student's cached
// transcript is invalidated.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand contains the parameters for recording a grade.
type RecordGradeCommand struct {
	StudentID    int64
	CourseID     int64
	Score        float64
	Semester     int
	AcademicYear string
}

// RecordGradeHandler handles grade recording.
type RecordGradeHandler struct {
	grades grade.Repository
	cache  grade.TranscriptCache // may be nil
	log    *logger.Logger
}

// NewRecordGradeHandler creates the handler. cache and log may be nil.
func NewRecordGradeHandler(grades grade.Repository, cache grade.TranscriptCache, log *logger.Logger) *RecordGradeHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RecordGradeHandler{
		grades: grades,
		cache:  cache,
		log:    log.With(logger.Component("command.record_grade")),
	}
}

// Handle records the grade and returns the new surrogate id.
func (h *RecordGradeHandler) Handle(ctx context.Context, cmd RecordGradeCommand) (int64, error) {
	id, err := h.grades.Create(ctx, grade.CreateInput{
		StudentID:    cmd.StudentID,
		CourseID:     cmd.CourseID,
		Score:        cmd.Score,
		Semester:     cmd.Semester,
		AcademicYear: cmd.AcademicYear,
	})
	if err != nil {
		return 0, err
	}

	invalidateTranscript(ctx, h.cache, h.log, cmd.StudentID)

	h.log.Info("grade recorded",
		logger.GradeID(id),
		logger.StudentID(cmd.StudentID),
		logger.CourseID(cmd.CourseID),
		logger.Score(cmd.Score),
	)
	return id, nil
}
