package grade

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/student"
)

// Transcript combines a student's identity with all of their graded courses
// and the aggregated totals computed by Summarize.
type Transcript struct {
	Student      *student.Student
	Grades       []StudentGrade
	TotalCredits int
	GPA          float64
}

// Repository defines persistence operations for grades.
type Repository interface {
	// Create records a new grade. The letter is derived from the score via
	// ScoreToLetter and persisted together with it. Returns
	// shared.ErrDuplicateGrade when a grade already exists for the same
	// (student, course, semester, academic year) quadruple.
	Create(ctx context.Context, in CreateInput) (int64, error)

	// GetByID returns a grade by surrogate id.
	GetByID(ctx context.Context, id int64) (*Grade, error)

	// FindByKey returns the grade for an exact quadruple, or
	// shared.ErrGradeNotFound. Create uses the same lookup as its duplicate
	// guard.
	FindByKey(ctx context.Context, key Key) (*Grade, error)

	// StudentGrades returns all grades of a student joined with course
	// identity, ordered by (semester, course code).
	StudentGrades(ctx context.Context, studentID int64) ([]StudentGrade, error)

	// CourseGrades returns all grades of a course joined with student
	// identity, ordered by NIM.
	CourseGrades(ctx context.Context, courseID int64) ([]CourseGrade, error)

	// Rescore replaces the score of a grade and recomputes the letter; both
	// fields are persisted in one statement so the letter is never stale.
	Rescore(ctx context.Context, id int64, score float64) error

	// Delete removes a grade entry.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of grade entries.
	Count(ctx context.Context) (int, error)

	// Distribution counts grades per letter, zero-filled over A..E.
	// A non-nil courseID scopes the count to one course.
	Distribution(ctx context.Context, courseID *int64) (Distribution, error)

	// Transcript assembles a student's transcript. Returns
	// shared.ErrStudentNotFound when the student does not exist; a student
	// with no grades gets TotalCredits 0 and GPA 0.0.
	Transcript(ctx context.Context, studentID int64) (*Transcript, error)
}
