// Package querybuilder renders the small set of PostgreSQL statements the
// player store issues, numbering $n placeholders across every clause.
package querybuilder

import (
	"strconv"
	"strings"
)

// binder collects arguments in render order and hands out their placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return "$" + strconv.Itoa(len(b.args))
}

// expand replaces each ? in expr with the next bound value. Extra ? marks
// without a value are left as is.
func (b *binder) expand(expr string, values []any) string {
	if len(values) == 0 {
		return expr
	}

	var out strings.Builder
	out.Grow(len(expr) + 2*len(values))
	next := 0
	for _, r := range expr {
		if r == '?' && next < len(values) {
			out.WriteString(b.bind(values[next]))
			next++
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func (b *binder) where(buf *strings.Builder, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		buf.WriteString(c.render(b))
	}
}
