package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-hub/academic-records/internal/domain/course"
	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE REPOSITORY
// ══════════════════════════════════════════════════════════════════════════════

const courseColumns = "id, code, name, credits, semester, description, created_at, updated_at"

// CourseRepository implements course.Repository for PostgreSQL.
type CourseRepository struct {
	acc  *Accessor
	conn *Connection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(conn *Connection) *CourseRepository {
	return &CourseRepository{
		acc:  mustAccessor(conn, "courses"),
		conn: conn,
	}
}

// Create registers a new course. Validation reports a distinct error per
// violated constraint; the code uniqueness pre-check runs before any write.
func (r *CourseRepository) Create(ctx context.Context, in course.CreateInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	_, err := r.GetByCode(ctx, in.Code)
	switch {
	case err == nil:
		return 0, shared.ErrCourseCodeTaken
	case !shared.IsNotFound(err):
		return 0, err
	}

	query := `
		INSERT INTO courses (code, name, credits, semester, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = r.conn.QueryRow(ctx, query, in.Code.String(), in.Name, in.Credits, in.Semester, in.Description).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, shared.ErrCourseCodeTaken
		}
		return 0, shared.WrapError("course", "Create", shared.ErrStore, "insert failed", err)
	}
	return id, nil
}

// GetByID returns a course by surrogate id.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1", courseColumns)
	return r.scanCourse(ctx, "GetByID", query, id)
}

// GetByCode returns a course by exact code match.
func (r *CourseRepository) GetByCode(ctx context.Context, code course.Code) (*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE code = $1", courseColumns)
	return r.scanCourse(ctx, "GetByCode", query, code.String())
}

// GetBySemester returns the courses of a semester, ordered by code.
func (r *CourseRepository) GetBySemester(ctx context.Context, semester int) ([]*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE semester = $1 ORDER BY code", courseColumns)
	return r.scanCourses(ctx, "GetBySemester", query, semester)
}

// SearchByName returns courses whose name contains the fragment,
// case-insensitively, ordered by name.
func (r *CourseRepository) SearchByName(ctx context.Context, fragment string) ([]*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE name ILIKE $1 ORDER BY name", courseColumns)
	return r.scanCourses(ctx, "SearchByName", query, "%"+fragment+"%")
}

// GetByCredits returns the courses worth the given credits, ordered by
// (semester, code).
func (r *CourseRepository) GetByCredits(ctx context.Context, credits int) ([]*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE credits = $1 ORDER BY semester, code", courseColumns)
	return r.scanCourses(ctx, "GetByCredits", query, credits)
}

// GetAll returns all courses, optionally bounded by limit.
func (r *CourseRepository) GetAll(ctx context.Context, limit int) ([]*course.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses", courseColumns)
	if limit > 0 {
		return r.scanCourses(ctx, "GetAll", query+" LIMIT $1", limit)
	}
	return r.scanCourses(ctx, "GetAll", query)
}

// Update applies the present fields of upd. Range validation runs before any
// field is applied, so an out-of-range value rejects the whole update and no
// partial application happens.
func (r *CourseRepository) Update(ctx context.Context, id int64, upd course.Update) error {
	if !upd.HasChanges() {
		return shared.ErrNoFieldsToUpdate
	}
	if err := upd.Validate(); err != nil {
		return err
	}

	var set updateSet
	if upd.Name != nil {
		set.add("name", *upd.Name)
	}
	if upd.Credits != nil {
		set.add("credits", *upd.Credits)
	}
	if upd.Semester != nil {
		set.add("semester", *upd.Semester)
	}
	if upd.Description != nil {
		set.add("description", *upd.Description)
	}
	set.addRaw("updated_at = NOW()")

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d", clause, set.next(1))
	args = append(args, id)

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return shared.WrapError("course", "Update", shared.ErrStore, "update failed", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course; the store cascades dependent grades.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	err := r.acc.Delete(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return shared.ErrCourseNotFound
	}
	if err != nil {
		return shared.WrapError("course", "Delete", shared.ErrStore, "delete failed", err)
	}
	return nil
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	return r.acc.Count(ctx)
}

// TotalCreditsBySemester sums the credits of all courses in a semester.
func (r *CourseRepository) TotalCreditsBySemester(ctx context.Context, semester int) (int, error) {
	query := "SELECT COALESCE(SUM(credits), 0) FROM courses WHERE semester = $1"

	var total int
	if err := r.conn.QueryRow(ctx, query, semester).Scan(&total); err != nil {
		return 0, shared.WrapError("course", "TotalCreditsBySemester", shared.ErrStore, "query failed", err)
	}
	return total, nil
}

// EnrolledStudents returns the students graded in a course with their score
// and letter, ordered by NIM.
func (r *CourseRepository) EnrolledStudents(ctx context.Context, courseID int64) ([]course.Enrollment, error) {
	query := `
		SELECT s.id, s.nim, s.name, s.major, g.score, g.grade_letter
		FROM students s
		JOIN grades g ON s.id = g.student_id
		WHERE g.course_id = $1
		ORDER BY s.nim
	`

	rows, err := r.conn.Query(ctx, query, courseID)
	if err != nil {
		return nil, shared.WrapError("course", "EnrolledStudents", shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var enrollments []course.Enrollment
	for rows.Next() {
		var e course.Enrollment
		var nim string
		var letter string
		if err := rows.Scan(&e.StudentID, &nim, &e.Name, &e.Major, &e.Score, &letter); err != nil {
			return nil, err
		}
		e.NIM = student.NIM(nim)
		e.Letter = grade.Letter(letter)
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ─────────────────────────────────────────────────────────────────────────────
// Scan helpers
// ─────────────────────────────────────────────────────────────────────────────

func (r *CourseRepository) scanCourse(ctx context.Context, op, query string, args ...any) (*course.Course, error) {
	var c course.Course
	err := r.conn.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Code, &c.Name, &c.Credits, &c.Semester, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrCourseNotFound
		}
		return nil, shared.WrapError("course", op, shared.ErrStore, "query failed", err)
	}
	return &c, nil
}

func (r *CourseRepository) scanCourses(ctx context.Context, op, query string, args ...any) ([]*course.Course, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, shared.WrapError("course", op, shared.ErrStore, "query failed", err)
	}
	defer rows.Close()

	var courses []*course.Course
	for rows.Next() {
		var c course.Course
		err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Semester, &c.Description, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		courses = append(courses, &c)
	}
	return courses, rows.Err()
}
