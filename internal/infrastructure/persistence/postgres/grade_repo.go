package postgres

import (
	"context"
	"errors"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GRADE REPOSITORY
// The letter column is always written together with the score it was derived
// from; no statement ever touches one without the other.
// ══════════════════════════════════════════════════════════════════════════════

// GradeRepository implements grade.Repository for PostgreSQL.
type GradeRepository struct {
	acc      *Accessor
	conn     *Connection
	students student.Repository
}

// NewGradeRepository creates a new GradeRepository. The student repository
// is used to resolve the student identity on transcripts.
func NewGradeRepository(conn *Connection, students student.Repository) *GradeRepository {
	return &GradeRepository{
		acc:      mustAccessor(conn, "grades"),
		conn:     conn,
		students: students,
	}
}

// Create records a new grade. The quadruple duplicate pre-check runs before
// the write; the UNIQUE constraint closes the remaining race, and a
// violation that slips past the pre-check maps to the same conflict error.
func (r *GradeRepository) Create(ctx context.Context, in grade.CreateInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	_, err := r.FindByKey(ctx, in.Key())
	switch {
	case err == nil:
		return 0, shared.ErrDuplicateGrade
	case !shared.IsNotFound(err):
		return 0, err
	}

	letter := grade.ScoreToLetter(in.Score)

	query := `
		INSERT INTO grades (student_id, course_id, score, grade_letter, semester, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err = r.conn.QueryRow(ctx, query,
		in.StudentID, in.CourseID, in.Score, string(letter), in.Semester, in.AcademicYear,
	).Scan(&id)
	if err != nil {
		switch {
		case IsUniqueViolation(err):
			return 0, shared.ErrDuplicateGrade
		case IsForeignKeyViolation(err):
			// A dangling reference is a not-found on the referenced entity,
			// not a store failure.
			if ViolatedConstraint(err) == "grades_course_id_fkey" {
				return 0, shared.ErrCourseNotFound
			}
			return 0, shared.ErrStudentNotFound
		case IsCheckViolation(err):
			// The range checks mirror CreateInput.Validate; a violation that
			// reaches the store still surfaces as a validation error.
			return 0, shared.WrapError("grade", "Create", shared.ErrValueOutOfRange,
				"score or semester outside allowed range", err)
		}
		return 0, shared.WrapError("grade", "Create", shared.ErrStore, "insert failed", err)
	}
	return id, nil
}

// GetByID returns a grade by surrogate id.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*grade.Grade, error) {
	query := `
		SELECT id, student_id, course_id, score, grade_letter, semester, academic_year, created_at, updated_at
		FROM grades
		WHERE id = $1
	`
	return r.scanGrade(ctx, "GetByID", query, id)
}

// FindByKey returns the grade for an exact quadruple match.
func (r *GradeRepository) FindByKey(ctx context.Context, key grade.Key) (*grade.Grade, error) {
	query := `
		SELECT id, student_id, course_id, score, grade_letter, semester, academic_year, created_at, updated_at
		FROM grades
		WHERE student_id = $1 AND course_id = $2 AND semester = $3 AND academic_year = $4
	`
	return r.scanGrade(ctx, "FindByKey", query, key.StudentID, key.CourseID, key.Semester, key.AcademicYear)
}

// StudentGrades returns all grades of a student joined with course identity,
// ordered by (semester, course code).
func (r *GradeRepository) StudentGrades(ctx context.Context, studentID int64) ([]grade.StudentGrade, error) {
	query := `
		SELECT g.id, g.score, g.grade_letter, g.semester, g.academic_year,
		       c.code, c.name, c.credits
		FROM grades g
		JOIN courses c ON g.course_id = c.id
		WHERE g.student_id = $1
		ORDER BY g.semester, c.code
	`

	rows, err := r.conn.Query(ctx, query, studentID)
	if err != nil {
		return nil, shared.WrapError("grade", "StudentGrades", shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var grades []grade.StudentGrade
	for rows.Next() {
		var g grade.StudentGrade
		var letter string
		err := rows.Scan(&g.ID, &g.Score, &letter, &g.Semester, &g.AcademicYear,
			&g.CourseCode, &g.CourseName, &g.Credits)
		if err != nil {
			return nil, err
		}
		g.Letter = grade.Letter(letter)
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// CourseGrades returns all grades of a course joined with student identity,
// ordered by NIM.
func (r *GradeRepository) CourseGrades(ctx context.Context, courseID int64) ([]grade.CourseGrade, error) {
	query := `
		SELECT g.id, g.score, g.grade_letter, g.semester, g.academic_year,
		       s.nim, s.name, s.major
		FROM grades g
		JOIN students s ON g.student_id = s.id
		WHERE g.course_id = $1
		ORDER BY s.nim
	`

	rows, err := r.conn.Query(ctx, query, courseID)
	if err != nil {
		return nil, shared.WrapError("grade", "CourseGrades", shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var grades []grade.CourseGrade
	for rows.Next() {
		var g grade.CourseGrade
		var letter string
		err := rows.Scan(&g.ID, &g.Score, &letter, &g.Semester, &g.AcademicYear,
			&g.NIM, &g.StudentName, &g.Major)
		if err != nil {
			return nil, err
		}
		g.Letter = grade.Letter(letter)
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// Rescore replaces a grade's score and its derived letter in one statement.
func (r *GradeRepository) Rescore(ctx context.Context, id int64, score float64) error {
	if !grade.ValidScore(score) {
		return shared.ErrScoreOutOfRange
	}

	letter := grade.ScoreToLetter(score)

	query := `
		UPDATE grades
		SET score = $1, grade_letter = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := r.conn.Exec(ctx, query, score, string(letter), id)
	if err != nil {
		return shared.WrapError("grade", "Rescore", shared.ErrStore, "update failed", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrGradeNotFound
	}
	return nil
}

// Delete removes a grade entry.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	err := r.acc.Delete(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return shared.ErrGradeNotFound
	}
	if err != nil {
		return shared.WrapError("grade", "Delete", shared.ErrStore, "delete failed", err)
	}
	return nil
}

// Count returns the total number of grade entries.
func (r *GradeRepository) Count(ctx context.Context) (int, error) {
	return r.acc.Count(ctx)
}

// Distribution counts grades per letter, zero-filled over A..E. A non-nil
// courseID scopes the count to one course.
func (r *GradeRepository) Distribution(ctx context.Context, courseID *int64) (grade.Distribution, error) {
	query := "SELECT grade_letter, COUNT(*) FROM grades"
	var args []any
	if courseID != nil {
		query += " WHERE course_id = $1"
		args = append(args, *courseID)
	}
	query += " GROUP BY grade_letter"

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, shared.WrapError("grade", "Distribution", shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	dist := grade.NewDistribution()
	for rows.Next() {
		var letter string
		var count int
		if err := rows.Scan(&letter, &count); err != nil {
			return nil, err
		}
		dist[grade.Letter(letter)] = count
	}
	return dist, rows.Err()
}

// Transcript assembles a student's transcript: identity, graded courses and
// the aggregated totals from grade.Summarize.
func (r *GradeRepository) Transcript(ctx context.Context, studentID int64) (*grade.Transcript, error) {
	s, err := r.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades, err := r.StudentGrades(ctx, studentID)
	if err != nil {
		return nil, err
	}

	totalCredits, gpa := grade.Summarize(grades)

	return &grade.Transcript{
		Student:      s,
		Grades:       grades,
		TotalCredits: totalCredits,
		GPA:          gpa,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Scan helpers
// ─────────────────────────────────────────────────────────────────────────────

func (r *GradeRepository) scanGrade(ctx context.Context, op, query string, args ...any) (*grade.Grade, error) {
	var g grade.Grade
	var letter string
	err := r.conn.QueryRow(ctx, query, args...).Scan(
		&g.ID, &g.StudentID, &g.CourseID, &g.Score, &letter,
		&g.Semester, &g.AcademicYear, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrGradeNotFound
		}
		return nil, shared.WrapError("grade", op, shared.ErrStore, "query failed", err)
	}
	g.Letter = grade.Letter(letter)
	return &g, nil
}
