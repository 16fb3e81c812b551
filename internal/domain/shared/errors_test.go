package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	e := NewDomainError("student", "Create", ErrAlreadyExists, "student with this NIM already exists")
	assert.Equal(t, "student.Create: student with this NIM already exists", e.Error())

	wrapped := WrapError("grade", "Count", ErrStore, "failed to count grades", errors.New("connection refused"))
	assert.Equal(t, "grade.Count: failed to count grades: connection refused", wrapped.Error())
}

func TestDomainError_Is(t *testing.T) {
	assert.ErrorIs(t, ErrStudentNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrNIMTaken, ErrAlreadyExists)
	assert.ErrorIs(t, ErrScoreOutOfRange, ErrValueOutOfRange)
	assert.NotErrorIs(t, ErrStudentNotFound, ErrAlreadyExists)

	// Wrapped underlying errors also match.
	inner := errors.New("boom")
	wrapped := WrapError("course", "GetAll", ErrStore, "query failed", inner)
	assert.ErrorIs(t, wrapped, ErrStore)
	assert.ErrorIs(t, wrapped, inner)
}

func TestDomainError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := WrapError("course", "GetAll", ErrStore, "query failed", inner)
	assert.Equal(t, inner, errors.Unwrap(wrapped))

	// Without an underlying error the kind is the unwrap target.
	bare := NewDomainError("course", "Find", ErrNotFound, "course not found")
	assert.Equal(t, ErrNotFound, errors.Unwrap(bare))
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(ErrGradeNotFound))
	assert.False(t, IsNotFound(ErrDuplicateGrade))

	assert.True(t, IsConflict(ErrDuplicateGrade))
	assert.True(t, IsConflict(ErrCourseCodeTaken))
	assert.False(t, IsConflict(ErrCourseNotFound))

	assert.True(t, IsValidation(ErrMissingNIM))
	assert.True(t, IsValidation(ErrScoreOutOfRange))
	assert.True(t, IsValidation(ErrMissingStudentRef))
	assert.True(t, IsValidation(ErrNoFieldsToUpdate))
	assert.False(t, IsValidation(ErrStudentNotFound))

	assert.True(t, IsStore(WrapError("student", "Count", ErrStore, "count failed", nil)))
	assert.False(t, IsStore(ErrStudentNotFound))
}
