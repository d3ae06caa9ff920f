package source_test

import (
	"testing"

	"crest/internal/source"
)

func TestSpanBasics(t *testing.T) {
	sp := source.Span{Start: 3, End: 10}
	if sp.Empty() {
		t.Fatalf("span %v must not be empty", sp)
	}
	if sp.Len() != 7 {
		t.Fatalf("expected len 7, got %d", sp.Len())
	}
	if got := sp.String(); got != "3-10" {
		t.Fatalf("unexpected string form: %q", got)
	}
	if !sp.Contains(3) || sp.Contains(10) {
		t.Fatalf("span must be half-open: %v", sp)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 5, End: 8}
	b := source.Span{Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("cover of %v and %v gave %v", a, b, got)
	}
}

func TestSpanShiftRight(t *testing.T) {
	sp := source.Span{Start: 1, End: 4}.ShiftRight(10)
	if sp.Start != 11 || sp.End != 14 {
		t.Fatalf("shift gave %v", sp)
	}
}
