package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY
// ══════════════════════════════════════════════════════════════════════════════

const studentColumns = "id, nim, name, major, email, phone, created_at, updated_at"

// StudentRepository implements student.Repository for PostgreSQL.
type StudentRepository struct {
	acc  *Accessor
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{
		acc:  mustAccessor(conn, "students"),
		conn: conn,
	}
}

// mustAccessor builds an accessor for a compile-time table constant; a bad
// constant is a programming error, so it fails fast.
func mustAccessor(conn *Connection, table string) *Accessor {
	acc, err := NewAccessor(conn, table)
	if err != nil {
		panic(err)
	}
	return acc
}

// Create registers a new student. The NIM uniqueness pre-check runs before
// any write; the store's UNIQUE constraint backs it up.
func (r *StudentRepository) Create(ctx context.Context, in student.CreateInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	_, err := r.GetByNIM(ctx, in.NIM)
	switch {
	case err == nil:
		return 0, shared.ErrNIMTaken
	case !shared.IsNotFound(err):
		return 0, err
	}

	query := `
		INSERT INTO students (nim, name, major, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.conn.QueryRow(ctx, query, in.NIM.String(), in.Name, in.Major, in.Email, in.Phone).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, shared.ErrNIMTaken
		}
		return 0, shared.WrapError("student", "Create", shared.ErrStore, "insert failed", err)
	}
	return id, nil
}

// GetByID returns a student by surrogate id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE id = $1", studentColumns)
	return r.scanStudent(ctx, "GetByID", query, id)
}

// GetByNIM returns a student by NIM. The match is case-sensitive and exact.
func (r *StudentRepository) GetByNIM(ctx context.Context, nim student.NIM) (*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE nim = $1", studentColumns)
	return r.scanStudent(ctx, "GetByNIM", query, nim.String())
}

// GetByEmail returns a student by exact email match.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE email = $1", studentColumns)
	return r.scanStudent(ctx, "GetByEmail", query, email)
}

// SearchByName returns students whose name contains the fragment,
// case-insensitively, in natural store order.
func (r *StudentRepository) SearchByName(ctx context.Context, fragment string) ([]*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE name ILIKE $1", studentColumns)
	return r.scanStudents(ctx, "SearchByName", query, "%"+fragment+"%")
}

// GetByMajor returns the students of a major, ordered by name ascending.
func (r *StudentRepository) GetByMajor(ctx context.Context, major string) ([]*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE major = $1 ORDER BY name", studentColumns)
	return r.scanStudents(ctx, "GetByMajor", query, major)
}

// GetAll returns all students, optionally bounded by limit.
func (r *StudentRepository) GetAll(ctx context.Context, limit int) ([]*student.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students", studentColumns)
	if limit > 0 {
		return r.scanStudents(ctx, "GetAll", query+" LIMIT $1", limit)
	}
	return r.scanStudents(ctx, "GetAll", query)
}

// Update applies the present fields of upd to the student.
func (r *StudentRepository) Update(ctx context.Context, id int64, upd student.Update) error {
	if !upd.HasChanges() {
		return shared.ErrNoFieldsToUpdate
	}

	var set updateSet
	if upd.Name != nil {
		set.add("name", *upd.Name)
	}
	if upd.Major != nil {
		set.add("major", *upd.Major)
	}
	if upd.Email != nil {
		set.add("email", *upd.Email)
	}
	if upd.Phone != nil {
		set.add("phone", *upd.Phone)
	}
	set.addRaw("updated_at = NOW()")

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", clause, set.next(1))
	args = append(args, id)

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return shared.WrapError("student", "Update", shared.ErrStore, "update failed", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student; the store cascades dependent grades.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	err := r.acc.Delete(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return shared.ErrStudentNotFound
	}
	if err != nil {
		return shared.WrapError("student", "Delete", shared.ErrStore, "delete failed", err)
	}
	return nil
}

// Count returns the total number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	return r.acc.Count(ctx)
}

// Majors returns the distinct major names, ordered alphabetically.
func (r *StudentRepository) Majors(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(ctx, "SELECT DISTINCT major FROM students ORDER BY major")
	if err != nil {
		return nil, shared.WrapError("student", "Majors", shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var majors []string
	for rows.Next() {
		var major string
		if err := rows.Scan(&major); err != nil {
			return nil, err
		}
		majors = append(majors, major)
	}
	return majors, rows.Err()
}

// CountByMajor returns the number of students in a major.
func (r *StudentRepository) CountByMajor(ctx context.Context, major string) (int, error) {
	var total int
	err := r.conn.QueryRow(ctx, "SELECT COUNT(*) FROM students WHERE major = $1", major).Scan(&total)
	if err != nil {
		return 0, shared.WrapError("student", "CountByMajor", shared.ErrStore, "query failed", err)
	}
	return total, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Scan helpers
// ─────────────────────────────────────────────────────────────────────────────

func (r *StudentRepository) scanStudent(ctx context.Context, op, query string, args ...any) (*student.Student, error) {
	var s student.Student
	err := r.conn.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.NIM, &s.Name, &s.Major, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrStudentNotFound
		}
		return nil, shared.WrapError("student", op, shared.ErrStore, "query failed", err)
	}
	return &s, nil
}

func (r *StudentRepository) scanStudents(ctx context.Context, op, query string, args ...any) ([]*student.Student, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, shared.WrapError("student", op, shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var students []*student.Student
	for rows.Next() {
		var s student.Student
		err := rows.Scan(&s.ID, &s.NIM, &s.Name, &s.Major, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, &s)
	}
	return students, rows.Err()
}
