package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESCORE GRADE COMMAND
// Replaces a grade's score; the letter is recomputed and persisted together
// with it by the repository, so the two can never diverge.
// ══════════════════════════════════════════════════════════════════════════════

// RescoreGradeCommand contains the parameters for rescoring a grade.
type RescoreGradeCommand struct {
	GradeID int64
	Score   float64
}

// RescoreGradeHandler handles grade rescoring.
type RescoreGradeHandler struct {
	grades grade.Repository
	cache  grade.TranscriptCache // may be nil
	log    *logger.Logger
}

// NewRescoreGradeHandler creates the handler. cache and log may be nil.
func NewRescoreGradeHandler(grades grade.Repository, cache grade.TranscriptCache, log *logger.Logger) *RescoreGradeHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RescoreGradeHandler{
		grades: grades,
		cache:  cache,
		log:    log.With(logger.Component("command.rescore_grade")),
	}
}

// Handle applies the new score. The grade is resolved first so the owning
// student's cached transcript can be invalidated afterwards.
func (h *RescoreGradeHandler) Handle(ctx context.Context, cmd RescoreGradeCommand) error {
	g, err := h.grades.GetByID(ctx, cmd.GradeID)
	if err != nil {
		return err
	}

	if err := h.grades.Rescore(ctx, cmd.GradeID, cmd.Score); err != nil {
		return err
	}

	invalidateTranscript(ctx, h.cache, h.log, g.StudentID)

	h.log.Info("grade rescored",
		logger.GradeID(cmd.GradeID),
		logger.StudentID(g.StudentID),
		logger.Score(cmd.Score),
	)
	return nil
}
