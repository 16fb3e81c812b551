// Package grade contains the grade domain model and the pure derivation
// engine that maps numeric scores to letters and GPA points.
package grade

import (
	"time"

	"github.com/campus-hub/academic-records/internal/domain/shared"
)

// Score bounds enforced on creation and rescoring.
const (
	MinScore = 0
	MaxScore = 100
)

// ValidScore reports whether score is within [MinScore, MaxScore].
func ValidScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

// Grade represents one graded enrollment: a student's result in a course for
// a specific semester and academic year. Letter is always derived from Score
// and is never set independently.
type Grade struct {
	ID           int64
	StudentID    int64
	CourseID     int64
	Score        float64
	Letter       Letter
	Semester     int
	AcademicYear string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key identifies one grade entry: at most one grade may exist per
// (student, course, semester, academic year) quadruple.
type Key struct {
	StudentID    int64
	CourseID     int64
	Semester     int
	AcademicYear string
}

// CreateInput carries the fields required to record a new grade. The letter
// is not part of the input; it is derived from the score by the engine.
type CreateInput struct {
	StudentID    int64
	CourseID     int64
	Score        float64
	Semester     int
	AcademicYear string
}

// Validate checks required references and numeric ranges, returning a
// distinct error per violated constraint.
func (in CreateInput) Validate() error {
	if in.StudentID <= 0 {
		return shared.ErrMissingStudentRef
	}
	if in.CourseID <= 0 {
		return shared.ErrMissingCourseRef
	}
	if !ValidScore(in.Score) {
		return shared.ErrScoreOutOfRange
	}
	if in.Semester < 1 || in.Semester > 8 {
		return shared.ErrSemesterOutOfRange
	}
	return nil
}

// Key returns the uniqueness key of the input.
func (in CreateInput) Key() Key {
	return Key{
		StudentID:    in.StudentID,
		CourseID:     in.CourseID,
		Semester:     in.Semester,
		AcademicYear: in.AcademicYear,
	}
}

// StudentGrade is a grade joined with the identity of its course, as listed
// on a transcript.
type StudentGrade struct {
	ID           int64
	Score        float64
	Letter       Letter
	Semester     int
	AcademicYear string
	CourseCode   string
	CourseName   string
	Credits      int
}

// CourseGrade is a grade joined with the identity of its student, as listed
// on a course result sheet.
type CourseGrade struct {
	ID           int64
	Score        float64
	Letter       Letter
	Semester     int
	AcademicYear string
	NIM          string
	StudentName  string
	Major        string
}
