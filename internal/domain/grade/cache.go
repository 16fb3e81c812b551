package grade

import "context"

// TranscriptCache caches assembled transcripts. Implementations live in
// infrastructure/persistence; a nil cache is always acceptable to callers.
// Repositories never read through this cache - it only serves the
// application-layer transcript query.
type TranscriptCache interface {
	// Get returns the cached transcript for a student, or an error on miss.
	Get(ctx context.Context, studentID int64) (*Transcript, error)

	// Set stores a transcript for a student.
	Set(ctx context.Context, studentID int64, tr *Transcript) error

	// Invalidate drops the cached transcript for a student.
	Invalidate(ctx context.Context, studentID int64) error
}
