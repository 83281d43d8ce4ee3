package postgres

import (
	"database/sql"
	"errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// chunks splits items into consecutive slices of at most size elements.
func chunks[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
