package store

import (
	"context"
	"os"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}
	ctx := context.Background()
	s, err := New(ctx, url)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIntegration_QueryReturnsColumns(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rows, cols, err := s.Query(ctx, `SELECT 1 AS one, 'a' AS letter`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(cols) != 2 || cols[0] != "one" || cols[1] != "letter" {
		t.Errorf("unexpected columns: %v", cols)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestIntegration_FailedQueryDoesNotPoisonConnection(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, _, err := s.Query(ctx, `SELECT definitely_not_a_column FROM nowhere`)
	if err == nil {
		t.Fatal("expected the malformed query to fail")
	}
	if !IsQueryError(err) {
		t.Errorf("expected a typed query error, got %v", err)
	}

	// The rollback must leave the connection usable for unrelated work.
	rows, _, err := s.Query(ctx, `SELECT 42 AS answer`)
	if err != nil {
		t.Fatalf("subsequent query failed, connection left aborted: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}
