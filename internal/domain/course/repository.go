package course

import (
	"context"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/student"
)

// Enrollment ties a student to their result in a course.
type Enrollment struct {
	StudentID int64
	NIM       student.NIM
	Name      string
	Major     string
	Score     float64
	Letter    grade.Letter
}

// Repository defines persistence operations for courses.
type Repository interface {
	// Create registers a new course after validating the input and checking
	// code uniqueness. Returns a distinct error per violated constraint.
	Create(ctx context.Context, in CreateInput) (int64, error)

	// GetByID returns a course by surrogate id.
	GetByID(ctx context.Context, id int64) (*Course, error)

	// GetByCode returns a course by code (exact match).
	GetByCode(ctx context.Context, code Code) (*Course, error)

	// GetBySemester returns the courses of a semester, ordered by code.
	GetBySemester(ctx context.Context, semester int) ([]*Course, error)

	// SearchByName returns courses whose name contains the fragment,
	// case-insensitively, ordered by name.
	SearchByName(ctx context.Context, fragment string) ([]*Course, error)

	// GetByCredits returns courses worth the given credits, ordered by
	// (semester, code).
	GetByCredits(ctx context.Context, credits int) ([]*Course, error)

	// GetAll returns all courses, optionally bounded by limit (0 = no limit).
	GetAll(ctx context.Context, limit int) ([]*Course, error)

	// Update applies the non-nil fields of upd. Range validation runs before
	// any field is applied; an invalid value rejects the whole update.
	Update(ctx context.Context, id int64, upd Update) error

	// Delete removes the course; dependent grades cascade at the store.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of courses.
	Count(ctx context.Context) (int, error)

	// TotalCreditsBySemester sums the credits of all courses in a semester.
	// Returns 0 when the semester has no courses.
	TotalCreditsBySemester(ctx context.Context, semester int) (int, error)

	// EnrolledStudents returns the students graded in a course together with
	// their score and letter, ordered by NIM.
	EnrolledStudents(ctx context.Context, courseID int64) ([]Enrollment, error)
}
