package store

import (
	"context"
	"errors"
)

// Querier is the interface consumed by the reports service.
// The concrete implementation is *Store (pgx-backed).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (rows [][]any, cols []string, err error)
}

// QueryError reports that the database rejected or failed to execute a
// statement. The transaction has already been rolled back by the time the
// caller sees it.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return "query failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// IsQueryError reports whether err is (or wraps) a store execution failure.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
