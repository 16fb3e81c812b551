// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")

	// Persistence errors
	ErrStore = errors.New("store error")

	// Contract errors
	ErrUnimplemented = errors.New("operation not implemented for this entity")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "course", "grade"
	Op      string // Operation that failed, e.g., "Create", "Update"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrNIMTaken        = NewDomainError("student", "Create", ErrAlreadyExists, "student with this NIM already exists")
	ErrMissingNIM      = NewDomainError("student", "Validate", ErrEmptyValue, "NIM is required")
	ErrMissingName     = NewDomainError("student", "Validate", ErrEmptyValue, "name is required")
	ErrMissingMajor    = NewDomainError("student", "Validate", ErrEmptyValue, "major is required")
)

// Course domain errors
var (
	ErrCourseNotFound     = NewDomainError("course", "Find", ErrNotFound, "course not found")
	ErrCourseCodeTaken    = NewDomainError("course", "Create", ErrAlreadyExists, "course with this code already exists")
	ErrMissingCourseCode  = NewDomainError("course", "Validate", ErrEmptyValue, "course code is required")
	ErrMissingCourseName  = NewDomainError("course", "Validate", ErrEmptyValue, "course name is required")
	ErrCreditsOutOfRange  = NewDomainError("course", "Validate", ErrValueOutOfRange, "credits must be between 1 and 6")
	ErrSemesterOutOfRange = NewDomainError("course", "Validate", ErrValueOutOfRange, "semester must be between 1 and 8")
)

// Grade domain errors
var (
	ErrGradeNotFound     = NewDomainError("grade", "Find", ErrNotFound, "grade not found")
	ErrDuplicateGrade    = NewDomainError("grade", "Create", ErrAlreadyExists, "grade already exists for this student, course, semester and academic year")
	ErrMissingStudentRef = NewDomainError("grade", "Validate", ErrInvalidID, "student ID is required")
	ErrMissingCourseRef  = NewDomainError("grade", "Validate", ErrInvalidID, "course ID is required")
	ErrScoreOutOfRange   = NewDomainError("grade", "Validate", ErrValueOutOfRange, "score must be between 0 and 100")
)

// Update errors shared by all entities
var (
	ErrNoFieldsToUpdate = NewDomainError("shared", "Update", ErrValidation, "no recognized fields to update")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error is a uniqueness/duplicate conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange)
}

// IsStore checks if the error originated in the persistence layer.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}
