package pagination

import (
	"fmt"
	"slices"
	"sort"
)

// Sorter orders rows of type T by named fields.
type Sorter[T any] struct {
	fields map[string]func(a, b T) int
}

// NewSorter returns a sorter over the given comparators, keyed by field
// name. Each comparator returns a negative number when a sorts first.
func NewSorter[T any](fields map[string]func(a, b T) int) *Sorter[T] {
	return &Sorter[T]{fields: fields}
}

// IsValidField reports whether field can be sorted on.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// ValidFields returns the sortable fields in name order.
func (s *Sorter[T]) ValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for f := range s.fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a stably sorted copy of rows. An empty expression returns
// rows unchanged.
func (s *Sorter[T]) Sort(rows []T, expr string) ([]T, error) {
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return rows, nil
	}
	cmp, ok := s.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, s.ValidFields())
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == SortOrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted, nil
}
