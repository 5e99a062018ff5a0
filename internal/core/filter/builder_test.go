package filter

import (
	"reflect"
	"testing"
)

func TestBuilder_SequentialNumbering(t *testing.T) {
	b := NewBuilder(1)
	b.Add("a = ?", 1)
	b.Add("(b = ? OR c = ?)", "x", "y")
	b.Add("d IS NULL")

	wantWhere := "a = $1\nAND (b = $2 OR c = $3)\nAND d IS NULL"
	if got := b.Where(); got != wantWhere {
		t.Fatalf("Where = %q, want %q", got, wantWhere)
	}
	wantArgs := []any{1, "x", "y"}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Fatalf("Args = %v, want %v", b.Args(), wantArgs)
	}
	if b.Next() != 4 {
		t.Fatalf("Next = %d, want 4", b.Next())
	}
}

func TestBuilder_StartOffset(t *testing.T) {
	b := NewBuilder(5)
	b.Add("x > ?", 10)
	if got := b.Where(); got != "x > $5" {
		t.Fatalf("Where = %q, want x > $5", got)
	}

	// a start below 1 is normalized to 1
	b = NewBuilder(0)
	b.Add("x > ?", 10)
	if got := b.Where(); got != "x > $1" {
		t.Fatalf("Where = %q, want x > $1", got)
	}
}

func TestBuilder_EmptyYieldsTrue(t *testing.T) {
	b := NewBuilder(1)
	if !b.Empty() {
		t.Fatal("fresh builder should be empty")
	}
	if got := b.Where(); got != "TRUE" {
		t.Fatalf("Where = %q, want TRUE", got)
	}
	if len(b.Args()) != 0 {
		t.Fatalf("Args = %v, want none", b.Args())
	}
}

func TestBuilder_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on placeholder/arg mismatch")
		}
	}()
	b := NewBuilder(1)
	b.Add("a = ? AND b = ?", 1)
}
