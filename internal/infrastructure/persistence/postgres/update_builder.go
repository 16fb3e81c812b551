package postgres

import (
	"fmt"
	"strings"
)

// updateSet collects column assignments for a partial UPDATE statement.
// Repositories add only the fields that are present on the typed update
// struct, so absent fields are skipped rather than cleared.
type updateSet struct {
	columns []string
	args    []any
}

// add registers an assignment for column.
func (s *updateSet) add(column string, value any) {
	s.columns = append(s.columns, column)
	s.args = append(s.args, value)
}

// addRaw registers a verbatim SQL expression (no placeholder), e.g. NOW().
func (s *updateSet) addRaw(expr string) {
	s.columns = append(s.columns, expr)
	s.args = append(s.args, nil)
}

// empty reports whether no assignment was added.
func (s *updateSet) empty() bool {
	return len(s.columns) == 0
}

// clause renders the SET clause with placeholders numbered from start and
// returns it together with the argument slice in placeholder order.
func (s *updateSet) clause(start int) (string, []any) {
	parts := make([]string, 0, len(s.columns))
	args := make([]any, 0, len(s.args))

	n := start
	for i, col := range s.columns {
		if strings.Contains(col, "=") {
			// Raw expression, carries no argument.
			parts = append(parts, col)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, s.args[i])
		n++
	}
	return strings.Join(parts, ", "), args
}

// next returns the placeholder number following the last assignment, for
// appending WHERE arguments.
func (s *updateSet) next(start int) int {
	n := start
	for _, col := range s.columns {
		if !strings.Contains(col, "=") {
			n++
		}
	}
	return n
}
