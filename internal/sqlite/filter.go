package sqlite

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// filterColumns maps Fetch filter keys to SQL predicates.
var filterColumns = map[string]string{
	types.FilterName:   "name = ?",
	types.FilterHobby:  "hobby = ?",
	types.FilterMinAge: "age >= ?",
	types.FilterMaxAge: "age <= ?",
}

// buildWhere translates a Fetch filter into a WHERE clause and its arguments.
// Only keys in allowed are accepted. Name and hobby take strings; min_age and
// max_age take int or int64. Keys are applied in sorted order.
// Returns ErrInvalidFilter for unknown keys or mistyped values.
func buildWhere(filter map[string]any, allowed ...string) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	var clauses []string
	var args []any
	for _, key := range slices.Sorted(maps.Keys(filter)) {
		if !slices.Contains(allowed, key) {
			return "", nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
		value := filter[key]
		switch key {
		case types.FilterName, types.FilterHobby:
			s, ok := value.(string)
			if !ok {
				return "", nil, fmt.Errorf("%w: %s must be a string", types.ErrInvalidFilter, key)
			}
			args = append(args, s)
		case types.FilterMinAge, types.FilterMaxAge:
			switch n := value.(type) {
			case int:
				args = append(args, int64(n))
			case int64:
				args = append(args, n)
			default:
				return "", nil, fmt.Errorf("%w: %s must be an integer", types.ErrInvalidFilter, key)
			}
		}
		clauses = append(clauses, filterColumns[key])
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
