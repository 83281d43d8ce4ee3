package querybuilder

import "strings"

// Condition is one AND-ed predicate of a WHERE clause.
type Condition interface {
	render(b *binder) string
}

type comparison struct {
	column string
	op     string
	value  any
}

func (c comparison) render(b *binder) string {
	return c.column + " " + c.op + " " + b.bind(c.value)
}

func Eq(column string, value any) Condition {
	return comparison{column: column, op: "=", value: value}
}

func Gt(column string, value any) Condition {
	return comparison{column: column, op: ">", value: value}
}

func Gte(column string, value any) Condition {
	return comparison{column: column, op: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return comparison{column: column, op: "<=", value: value}
}

// ILike matches substr anywhere in column, ignoring case. LIKE wildcards in
// substr are escaped.
func ILike(column, substr string) Condition {
	return comparison{column: column, op: "ILIKE", value: "%" + likeEscaper.Replace(substr) + "%"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type notEqAll struct {
	column string
	array  any
}

func (c notEqAll) render(b *binder) string {
	return c.column + " <> ALL(" + b.bind(c.array) + ")"
}

// NotEqAll excludes every element of array, which must be a driver array
// value such as pq.Array.
func NotEqAll(column string, array any) Condition {
	return notEqAll{column: column, array: array}
}

type expr struct {
	sql    string
	values []any
}

func (e expr) render(b *binder) string {
	return b.expand(e.sql, e.values)
}

// Expr embeds raw SQL, binding values to its ? marks in order.
func Expr(sql string, values ...any) Condition {
	return expr{sql: sql, values: values}
}
