package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModels builds one multi-row INSERT from db-tagged structs. Columns
// come from the first model; untagged, "-" and unexported fields are skipped.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no models", table)
	}

	var stmt *InsertBuilder
	for n := range models {
		columns, values, err := modelFields(reflect.ValueOf(&models[n]).Elem())
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", n, err)
		}
		if stmt == nil {
			stmt = InsertInto(table, columns...).Suffix(suffix)
		}
		stmt.Row(values...)
	}
	return stmt.ToSQL()
}

func modelFields(v reflect.Value) ([]string, []any, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("nil model")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model is %s, want struct", v.Kind())
	}

	typ := v.Type()
	columns := make([]string, 0, typ.NumField())
	values := make([]any, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		columns = append(columns, column)
		values = append(values, v.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("%s has no db columns", typ.Name())
	}
	return columns, values, nil
}
