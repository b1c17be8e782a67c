package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: relation clubs does not exist")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString(""); got.Valid {
		t.Fatalf("empty string must map to NULL, got %+v", got)
	}
	if got := nullString("$$"); !got.Valid || got.String != "$$" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}
