package testutil

import (
	"context"
	"strings"
	"sync"
)

// Result is one canned query response.
type Result struct {
	Rows [][]any
	Cols []string
}

// MockQuerier is a thread-safe in-memory implementation of store.Querier.
// Responses are matched by substring of the statement text; unmatched
// statements get the zero Result.
type MockQuerier struct {
	mu sync.Mutex

	Results map[string]Result

	Err      error // returned on every call until cleared
	FailNext error // returned once, then cleared

	Calls    int
	LastSQL  string
	LastArgs []any
	SeenSQL  []string
}

func NewMockQuerier() *MockQuerier {
	return &MockQuerier{Results: make(map[string]Result)}
}

func (m *MockQuerier) Query(_ context.Context, sql string, args ...any) ([][]any, []string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastSQL = sql
	m.LastArgs = args
	m.SeenSQL = append(m.SeenSQL, sql)

	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return nil, nil, err
	}
	if m.Err != nil {
		return nil, nil, m.Err
	}

	for key, res := range m.Results {
		if strings.Contains(sql, key) {
			return res.Rows, res.Cols, nil
		}
	}
	return nil, nil, nil
}

// SetResult registers a canned response for statements containing key.
func (m *MockQuerier) SetResult(key string, cols []string, rows [][]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results[key] = Result{Rows: rows, Cols: cols}
}
