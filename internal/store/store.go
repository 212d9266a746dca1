package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store executes read-only analytical queries against the traffic_stops
// database. Connections are acquired from a pool per query rather than held
// as a single process-wide handle, so concurrent sessions never interleave
// statements on one connection.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Query runs one statement in its own transaction and returns the raw rows
// plus the column names in projection order. On any failure the transaction
// is rolled back before the connection returns to the pool, so a bad query
// never leaves an aborted transaction behind to poison later requests.
func (s *Store) Query(ctx context.Context, sql string, args ...any) ([][]any, []string, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, &QueryError{Query: sql, Err: err}
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, nil, &QueryError{Query: sql, Err: err}
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, &QueryError{Query: sql, Err: err}
	}

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	var out [][]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			rows.Close()
			_ = tx.Rollback(ctx)
			return nil, nil, &QueryError{Query: sql, Err: err}
		}
		out = append(out, vals)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, &QueryError{Query: sql, Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, &QueryError{Query: sql, Err: err}
	}
	return out, cols, nil
}
