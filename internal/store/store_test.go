package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestQueryErrorMessage(t *testing.T) {
	err := &QueryError{Query: "SELECT nope", Err: errors.New("column \"nope\" does not exist")}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("underlying message lost: %s", err.Error())
	}
}

func TestQueryErrorUnwraps(t *testing.T) {
	inner := errors.New("connection refused")
	err := fmt.Errorf("listing stops: %w", &QueryError{Query: "SELECT 1", Err: inner})

	if !IsQueryError(err) {
		t.Error("IsQueryError should see through wrapping")
	}
	if !errors.Is(err, inner) {
		t.Error("the underlying error should still unwrap")
	}
}

func TestIsQueryErrorRejectsOthers(t *testing.T) {
	if IsQueryError(errors.New("plain")) {
		t.Error("plain errors are not query errors")
	}
	if IsQueryError(nil) {
		t.Error("nil is not a query error")
	}
}
