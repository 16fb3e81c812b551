package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/campus-hub/academic-records/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD ACCESSOR
// Generic single-table access shared by all entity repositories. Creation and
// update are declared here but must be overridden per entity, because every
// entity enforces its own validation and uniqueness rules.
// ══════════════════════════════════════════════════════════════════════════════

// ErrNoTable is a configuration error: an accessor was built without a table.
var ErrNoTable = errors.New("postgres: accessor requires a table name")

// tableNamePattern restricts table identifiers to what the schema uses; the
// name is interpolated into SQL and must never come from user input.
var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Accessor provides uniform find/delete/count operations for one table.
type Accessor struct {
	conn  *Connection
	table string
}

// NewAccessor creates an accessor for the given table. It fails fast when
// the table identifier is empty or not a plain lowercase identifier.
func NewAccessor(conn *Connection, table string) (*Accessor, error) {
	if table == "" {
		return nil, ErrNoTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("postgres: invalid table name %q", table)
	}
	return &Accessor{conn: conn, table: table}, nil
}

// Table returns the table this accessor operates on.
func (a *Accessor) Table() string {
	return a.table
}

// FindByID returns the row with the given surrogate id as a Record, or
// ErrRecordNotFound.
func (a *Accessor) FindByID(ctx context.Context, id int64) (Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", a.table)
	return a.conn.FetchOne(ctx, query, id)
}

// FindAll returns all rows, optionally bounded by limit (0 = no limit).
// Ordering is unspecified; repositories that guarantee an order supply it in
// their own queries.
func (a *Accessor) FindAll(ctx context.Context, limit int) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", a.table)
	if limit > 0 {
		return a.conn.FetchAll(ctx, query+" LIMIT $1", limit)
	}
	return a.conn.FetchAll(ctx, query)
}

// Delete removes the row with the given id. Returns ErrRecordNotFound when
// no row was removed.
func (a *Accessor) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", a.table)
	tag, err := a.conn.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Count returns the number of rows in the table.
func (a *Accessor) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", a.table)

	var total int
	if err := a.conn.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Create is a programming-error placeholder: every entity repository must
// implement its own creation with entity-specific validation.
func (a *Accessor) Create(ctx context.Context, rec Record) (int64, error) {
	return 0, shared.WrapError(a.table, "Create", shared.ErrUnimplemented,
		"generic create is not supported", nil)
}

// Update is a programming-error placeholder: every entity repository must
// implement its own update with entity-specific validation.
func (a *Accessor) Update(ctx context.Context, id int64, rec Record) error {
	return shared.WrapError(a.table, "Update", shared.ErrUnimplemented,
		"generic update is not supported", nil)
}
