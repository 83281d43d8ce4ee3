package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Limit adds a LIMIT clause; values <= 0 mean no limit.
func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 || strings.TrimSpace(s.table) == "" {
		return "", nil, fmt.Errorf("select needs columns and a table")
	}

	var (
		b   binder
		buf strings.Builder
	)
	buf.WriteString("SELECT " + strings.Join(s.columns, ", ") + " FROM " + s.table)
	b.where(&buf, s.where)
	if len(s.orderBy) > 0 {
		buf.WriteString(" ORDER BY " + strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		buf.WriteString(" LIMIT " + strconv.Itoa(s.limit))
	}
	return buf.String(), b.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string, columns ...string) *InsertBuilder {
	return &InsertBuilder{table: table, columns: append([]string(nil), columns...)}
}

// Row appends one VALUES tuple.
func (i *InsertBuilder) Row(values ...any) *InsertBuilder {
	i.rows = append(i.rows, values)
	return i
}

func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.suffix = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(i.table) == "" || len(i.columns) == 0 {
		return "", nil, fmt.Errorf("insert needs a table and columns")
	}
	if len(i.rows) == 0 {
		return "", nil, fmt.Errorf("insert into %s has no rows", i.table)
	}

	b := binder{args: make([]any, 0, len(i.rows)*len(i.columns))}
	var buf strings.Builder
	buf.WriteString("INSERT INTO " + i.table + " (" + strings.Join(i.columns, ", ") + ") VALUES ")
	for n, row := range i.rows {
		if len(row) != len(i.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values for %d columns", n, len(row), len(i.columns))
		}
		if n > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('(')
		for col, value := range row {
			if col > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(b.bind(value))
		}
		buf.WriteByte(')')
	}
	if i.suffix != "" {
		buf.WriteString(" " + i.suffix)
	}
	return buf.String(), b.args, nil
}

type assignment struct {
	column string
	expr   expr
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set assigns a bound value.
func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	return u.SetExpr(column, "?", value)
}

// SetExpr assigns raw SQL such as "version + 1", binding values to its ? marks.
func (u *UpdateBuilder) SetExpr(column, sql string, values ...any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, expr: expr{sql: sql, values: values}})
	return u
}

func (u *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	u.where = append(u.where, conditions...)
	return u
}

func (u *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	u.suffix = strings.TrimSpace(sql)
	return u
}

func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(u.table) == "" || len(u.sets) == 0 {
		return "", nil, fmt.Errorf("update needs a table and assignments")
	}

	var (
		b   binder
		buf strings.Builder
	)
	buf.WriteString("UPDATE " + u.table + " SET ")
	for n, set := range u.sets {
		if n > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(set.column + " = " + set.expr.render(&b))
	}
	b.where(&buf, u.where)
	if u.suffix != "" {
		buf.WriteString(" " + u.suffix)
	}
	return buf.String(), b.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	d.where = append(d.where, conditions...)
	return d
}

func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(d.table) == "" {
		return "", nil, fmt.Errorf("delete needs a table")
	}

	var (
		b   binder
		buf strings.Builder
	)
	buf.WriteString("DELETE FROM " + d.table)
	b.where(&buf, d.where)
	return buf.String(), b.args, nil
}
