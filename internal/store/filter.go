package store

import "strings"

// filter accumulates optional conjunctive predicates as fixed clause text
// plus a parallel parameter list. Caller data never reaches the SQL text;
// every value binds through a placeholder.
type filter struct {
	clauses []string
	args    []any
}

func newFilter() *filter {
	return &filter{}
}

// Eq adds "column = ?".
func (f *filter) Eq(column string, value any) {
	f.clauses = append(f.clauses, column+" = ?")
	f.args = append(f.args, value)
}

// In adds "column IN (?, ...)" with one placeholder per value, binding the
// values in order. An empty list adds no clause: absent filters match
// everything.
func (f *filter) In(column string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		f.args = append(f.args, v)
	}
	f.clauses = append(f.clauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
}

// Clause returns the predicate text to splice after an existing WHERE
// conjunction: either "" or " AND c1 = ? AND c2 IN (?, ?)".
func (f *filter) Clause() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(f.clauses, " AND ")
}

// Args returns the bound parameter values, in placeholder order.
func (f *filter) Args() []any {
	return f.args
}
