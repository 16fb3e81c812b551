// Package course contains the course domain model.
package course

import (
	"strings"
	"time"

	"github.com/campus-hub/academic-records/internal/domain/shared"
)

// Credit and semester bounds enforced on creation and update.
const (
	MinCredits  = 1
	MaxCredits  = 6
	MinSemester = 1
	MaxSemester = 8
)

// Code is the natural-key course code (e.g. "CS101"). Unique and immutable.
type Code string

// IsValid reports whether the code is non-empty.
func (c Code) IsValid() bool {
	return strings.TrimSpace(string(c)) != ""
}

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// ValidCredits reports whether credits is within [MinCredits, MaxCredits].
func ValidCredits(credits int) bool {
	return credits >= MinCredits && credits <= MaxCredits
}

// ValidSemester reports whether semester is within [MinSemester, MaxSemester].
func ValidSemester(semester int) bool {
	return semester >= MinSemester && semester <= MaxSemester
}

// Course represents a course offered in the curriculum.
type Course struct {
	ID          int64
	Code        Code
	Name        string
	Credits     int
	Semester    int
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInput carries the fields required to register a new course.
type CreateInput struct {
	Code        Code
	Name        string
	Credits     int
	Semester    int
	Description *string
}

// Validate checks required fields and numeric ranges, returning a distinct
// error per violated constraint.
func (in CreateInput) Validate() error {
	if !in.Code.IsValid() {
		return shared.ErrMissingCourseCode
	}
	if strings.TrimSpace(in.Name) == "" {
		return shared.ErrMissingCourseName
	}
	if !ValidCredits(in.Credits) {
		return shared.ErrCreditsOutOfRange
	}
	if !ValidSemester(in.Semester) {
		return shared.ErrSemesterOutOfRange
	}
	return nil
}

// Update enumerates the fields a course update may touch. The code is
// immutable and deliberately absent.
type Update struct {
	Name        *string
	Credits     *int
	Semester    *int
	Description *string
}

// HasChanges reports whether at least one recognized field is present.
func (u Update) HasChanges() bool {
	return u.Name != nil || u.Credits != nil || u.Semester != nil || u.Description != nil
}

// Validate re-checks the numeric ranges for any field that is present.
// It runs before any field is applied so an out-of-range value rejects the
// whole update.
func (u Update) Validate() error {
	if u.Credits != nil && !ValidCredits(*u.Credits) {
		return shared.ErrCreditsOutOfRange
	}
	if u.Semester != nil && !ValidSemester(*u.Semester) {
		return shared.ErrSemesterOutOfRange
	}
	return nil
}
