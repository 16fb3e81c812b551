package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/course"
	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE COURSE COMMAND
// The store cascades the course's grades, so the affected students are
// resolved before the delete and their cached transcripts dropped after it.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveCourseCommand contains the parameters for deleting a course.
type RemoveCourseCommand struct {
	CourseID int64
}

// RemoveCourseHandler handles course deletion.
type RemoveCourseHandler struct {
	courses course.Repository
	cache   grade.TranscriptCache // may be nil
	log     *logger.Logger
}

// NewRemoveCourseHandler creates the handler. cache and log may be nil.
func NewRemoveCourseHandler(courses course.Repository, cache grade.TranscriptCache, log *logger.Logger) *RemoveCourseHandler {
	if log == nil {
		log = logger.Default()
	}
	return &RemoveCourseHandler{
		courses: courses,
		cache:   cache,
		log:     log.With(logger.Component("command.remove_course")),
	}
}

// Handle deletes the course and invalidates the cached transcripts of every
// student that was graded in it.
func (h *RemoveCourseHandler) Handle(ctx context.Context, cmd RemoveCourseCommand) error {
	c, err := h.courses.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return err
	}

	enrolled, err := h.courses.EnrolledStudents(ctx, cmd.CourseID)
	if err != nil {
		return err
	}

	if err := h.courses.Delete(ctx, cmd.CourseID); err != nil {
		return err
	}

	for _, e := range enrolled {
		invalidateTranscript(ctx, h.cache, h.log, e.StudentID)
	}

	h.log.Info("course removed",
		logger.CourseID(cmd.CourseID),
		logger.CourseCode(c.Code.String()),
		logger.Int("graded_students", len(enrolled)),
	)
	return nil
}
