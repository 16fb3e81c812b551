package student

import "context"

// Repository defines persistence operations for students.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// Create registers a new student after validating the input and checking
	// NIM uniqueness. Returns the new surrogate id, shared.ErrNIMTaken on a
	// duplicate NIM, or a validation error.
	Create(ctx context.Context, in CreateInput) (int64, error)

	// GetByID returns a student by surrogate id.
	// Returns shared.ErrStudentNotFound if the student does not exist.
	GetByID(ctx context.Context, id int64) (*Student, error)

	// GetByNIM returns a student by NIM (case-sensitive exact match).
	GetByNIM(ctx context.Context, nim NIM) (*Student, error)

	// GetByEmail returns a student by exact email match.
	GetByEmail(ctx context.Context, email string) (*Student, error)

	// SearchByName returns students whose name contains the fragment,
	// case-insensitively. Order follows the natural store order.
	SearchByName(ctx context.Context, fragment string) ([]*Student, error)

	// GetByMajor returns students in a major, ordered by name ascending.
	GetByMajor(ctx context.Context, major string) ([]*Student, error)

	// GetAll returns all students, optionally bounded by limit (0 = no limit).
	GetAll(ctx context.Context, limit int) ([]*Student, error)

	// Update applies the non-nil fields of upd to the student. Fails with
	// shared.ErrNoFieldsToUpdate when nothing is set and with
	// shared.ErrStudentNotFound when the id does not resolve.
	Update(ctx context.Context, id int64, upd Update) error

	// Delete removes the student. Dependent grades are removed by the store's
	// cascade policy. Returns shared.ErrStudentNotFound for an unknown id.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of students.
	Count(ctx context.Context) (int, error)

	// Majors returns the distinct major names, ordered alphabetically.
	Majors(ctx context.Context) ([]string, error)

	// CountByMajor returns the number of students in a major.
	CountByMajor(ctx context.Context, major string) (int, error)
}
