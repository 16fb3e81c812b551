package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/course"
	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE COURSE COMMAND
// Transcripts carry the course name and credits, so a course change
// invalidates the cached transcript of every student graded in it.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateCourseCommand contains the course id and the fields to change.
type UpdateCourseCommand struct {
	CourseID int64
	Update   course.Update
}

// UpdateCourseHandler handles course updates.
type UpdateCourseHandler struct {
	courses course.Repository
	cache   grade.TranscriptCache // may be nil
	log     *logger.Logger
}

// NewUpdateCourseHandler creates the handler. cache and log may be nil.
func NewUpdateCourseHandler(courses course.Repository, cache grade.TranscriptCache, log *logger.Logger) *UpdateCourseHandler {
	if log == nil {
		log = logger.Default()
	}
	return &UpdateCourseHandler{
		courses: courses,
		cache:   cache,
		log:     log.With(logger.Component("command.update_course")),
	}
}

// Handle applies the present fields to the course and invalidates the
// cached transcripts of its graded students.
func (h *UpdateCourseHandler) Handle(ctx context.Context, cmd UpdateCourseCommand) error {
	c, err := h.courses.GetByID(ctx, cmd.CourseID)
	if err != nil {
		return err
	}

	enrolled, err := h.courses.EnrolledStudents(ctx, cmd.CourseID)
	if err != nil {
		return err
	}

	if err := h.courses.Update(ctx, cmd.CourseID, cmd.Update); err != nil {
		return err
	}

	for _, e := range enrolled {
		invalidateTranscript(ctx, h.cache, h.log, e.StudentID)
	}

	h.log.Info("course updated",
		logger.CourseID(cmd.CourseID),
		logger.CourseCode(c.Code.String()),
		logger.Int("graded_students", len(enrolled)),
	)
	return nil
}
