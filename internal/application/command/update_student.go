package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/student"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE STUDENT COMMAND
// A transcript carries the student's name and major, so every profile change
// invalidates the cached transcript along with the row update.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateStudentCommand contains the student id and the fields to change.
type UpdateStudentCommand struct {
	StudentID int64
	Update    student.Update
}

// UpdateStudentHandler handles student profile updates.
type UpdateStudentHandler struct {
	students student.Repository
	cache    grade.TranscriptCache // may be nil
	log      *logger.Logger
}

// NewUpdateStudentHandler creates the handler. cache and log may be nil.
func NewUpdateStudentHandler(students student.Repository, cache grade.TranscriptCache, log *logger.Logger) *UpdateStudentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &UpdateStudentHandler{
		students: students,
		cache:    cache,
		log:      log.With(logger.Component("command.update_student")),
	}
}

// Handle applies the present fields to the student.
func (h *UpdateStudentHandler) Handle(ctx context.Context, cmd UpdateStudentCommand) error {
	if err := h.students.Update(ctx, cmd.StudentID, cmd.Update); err != nil {
		return err
	}

	invalidateTranscript(ctx, h.cache, h.log, cmd.StudentID)

	h.log.Info("student updated", logger.StudentID(cmd.StudentID))
	return nil
}
