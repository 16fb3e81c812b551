package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolationClassifiers(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "unique_grade_entry"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "grades_student_id_fkey"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "valid_score"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(fk))

	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestViolationClassifiers_Wrapped(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "grades_course_id_fkey"}
	wrapped := fmt.Errorf("insert failed: %w", fk)

	assert.True(t, IsForeignKeyViolation(wrapped))
	assert.Equal(t, "grades_course_id_fkey", ViolatedConstraint(wrapped))
}

func TestViolatedConstraint(t *testing.T) {
	assert.Equal(t, "unique_grade_entry",
		ViolatedConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "unique_grade_entry"}))
	assert.Equal(t, "", ViolatedConstraint(errors.New("plain error")))
	assert.Equal(t, "", ViolatedConstraint(nil))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(ErrRecordNotFound))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("plain error")))
}
