package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE GRADE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// RemoveGradeCommand contains the parameters for deleting a grade entry.
type RemoveGradeCommand struct {
	GradeID int64
}

// RemoveGradeHandler handles grade deletion.
type RemoveGradeHandler struct {
	grades grade.Repository
	cache  grade.TranscriptCache // may be nil
	log    *logger.Logger
}

// NewRemoveGradeHandler creates the handler. cache and log may be nil.
func NewRemoveGradeHandler(grades grade.Repository, cache grade.TranscriptCache, log *logger.Logger) *RemoveGradeHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RemoveGradeHandler{
		grades: grades,
		cache:  cache,
		log:    log.With(logger.Component("command.remove_grade")),
	}
}

// Handle deletes the grade. The grade is resolved first so the owning
// student's cached transcript can be invalidated afterwards.
func (h *RemoveGradeHandler) Handle(ctx context.Context, cmd RemoveGradeCommand) error {
	g, err := h.grades.GetByID(ctx, cmd.GradeID)
	if err != nil {
		return err
	}

	if err := h.grades.Delete(ctx, cmd.GradeID); err != nil {
		return err
	}

	invalidateTranscript(ctx, h.cache, h.log, g.StudentID)

	h.log.Info("grade removed",
		logger.GradeID(cmd.GradeID),
		logger.StudentID(g.StudentID),
	)
	return nil
}
