package command

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/pkg/logger"
)

// invalidateTranscript drops a student's cached transcript after a write
// that changed what their transcript would show. A nil cache is a no-op and
// a failure is logged, never surfaced - the TTL bounds any staleness.
func invalidateTranscript(ctx context.Context, cache grade.TranscriptCache, log *logger.Logger, studentID int64) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, studentID); err != nil {
		log.Warn("failed to invalidate cached transcript",
			logger.StudentID(studentID), logger.Err(err))
	}
}
