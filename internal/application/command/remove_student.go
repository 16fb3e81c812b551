package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/student"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE STUDENT COMMAND
// The store cascades the student's grades; the cached transcript must go
// with them, or a transcript could be served for a student who no longer
// exists.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveStudentCommand contains the parameters for deleting a student.
type RemoveStudentCommand struct {
	StudentID int64
}

// RemoveStudentHandler handles student deletion.
type RemoveStudentHandler struct {
	students student.Repository
	cache    grade.TranscriptCache // may be nil
	log      *logger.Logger
}

// NewRemoveStudentHandler creates the handler. cache and log may be nil.
func NewRemoveStudentHandler(students student.Repository, cache grade.TranscriptCache, log *logger.Logger) *RemoveStudentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RemoveStudentHandler{
		students: students,
		cache:    cache,
		log:      log.With(logger.Component("command.remove_student")),
	}
}

// Handle deletes the student and drops their cached transcript.
func (h *RemoveStudentHandler) Handle(ctx context.Context, cmd RemoveStudentCommand) error {
	if err := h.students.Delete(ctx, cmd.StudentID); err != nil {
		return err
	}

	invalidateTranscript(ctx, h.cache, h.log, cmd.StudentID)

	h.log.Info("student removed", logger.StudentID(cmd.StudentID))
	return nil
}
