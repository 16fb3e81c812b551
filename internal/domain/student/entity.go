// Package student contains the student domain model.
// This is pure business logic with no external dependencies.
package student

import (
	"strings"
	"time"

	"github.com/campus-hub/academic-records/internal/domain/shared"
)

// NIM is the natural-key student identification number. It is treated as an
// opaque unique string and is immutable after creation.
type NIM string

// IsValid reports whether the NIM is non-empty.
func (n NIM) IsValid() bool {
	return strings.TrimSpace(string(n)) != ""
}

// String returns the string representation of the NIM.
func (n NIM) String() string {
	return string(n)
}

// Student represents an enrolled student.
type Student struct {
	// ID is the surrogate identifier assigned by the store.
	ID int64

	// NIM is the unique student number. Immutable after creation.
	NIM NIM

	// Name is the student's full name.
	Name string

	// Major is the student's study program.
	Major string

	// Email is optional contact information.
	Email *string

	// Phone is optional contact information.
	Phone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInput carries the fields required to register a new student.
type CreateInput struct {
	NIM   NIM
	Name  string
	Major string
	Email *string
	Phone *string
}

// Validate checks the required fields. It returns a distinct error per
// missing field so callers can report exactly what was wrong.
func (in CreateInput) Validate() error {
	if !in.NIM.IsValid() {
		return shared.ErrMissingNIM
	}
	if strings.TrimSpace(in.Name) == "" {
		return shared.ErrMissingName
	}
	if strings.TrimSpace(in.Major) == "" {
		return shared.ErrMissingMajor
	}
	return nil
}

// Update enumerates the fields a student update may touch. Nil pointers are
// skipped, never cleared; the NIM is deliberately absent because it is
// immutable.
type Update struct {
	Name  *string
	Major *string
	Email *string
	Phone *string
}

// HasChanges reports whether at least one recognized field is present.
func (u Update) HasChanges() bool {
	return u.Name != nil || u.Major != nil || u.Email != nil || u.Phone != nil
}
