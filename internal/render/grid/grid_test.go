package grid

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/cell"
)

func cells(widths ...int) []cell.TextCell {
	out := make([]cell.TextCell, len(widths))
	for i, w := range widths {
		out[i] = cell.Plain(repeat("x", w))
	}
	return out
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}

func TestComputeFitsAsManyColumnsAsPossible(t *testing.T) {
	cs := cells(3, 3, 3, 3, 3, 3)
	fit, ok := Compute(cs, 20, TopToBottom)
	if !ok {
		t.Fatal("expected a fit for width 20")
	}
	if fit.Columns < 2 {
		t.Fatalf("expected more than 1 column for width 20, got %d", fit.Columns)
	}

	total := 0
	for _, w := range fit.ColumnWidths {
		total += w
	}
	total += separatorWidth * (fit.Columns - 1)
	if total > 20 {
		t.Fatalf("grid total width %d exceeds terminal width 20", total)
	}
}

func TestComputeDegradesToOneColumnWhenASingleColumnStillFits(t *testing.T) {
	cs := cells(8, 8, 8)
	fit, ok := Compute(cs, 10, TopToBottom)
	if !ok {
		t.Fatal("expected a 1-column fit when the widest cell still fits width")
	}
	if fit.Columns != 1 {
		t.Fatalf("expected 1 column, got %d", fit.Columns)
	}
}

// TestComputeReturnsNoFitWhenEvenOneColumnOverflows is scenario #2: 3 cells
// of widths 40, 3, 3 into 20 columns — even a single column (width 40)
// overflows, so Compute must report no fit at all rather than an
// overflowing single column.
func TestComputeReturnsNoFitWhenEvenOneColumnOverflows(t *testing.T) {
	cs := cells(40, 3, 3)
	_, ok := Compute(cs, 20, TopToBottom)
	if ok {
		t.Fatal("expected no fit when the widest cell alone exceeds width")
	}
}

func TestComputeEmptyInput(t *testing.T) {
	fit, ok := Compute(nil, 80, TopToBottom)
	if !ok {
		t.Fatal("expected empty input to trivially fit")
	}
	if fit.Columns != 1 || fit.Rows != 0 {
		t.Fatalf("expected degenerate empty fit, got %+v", fit)
	}
}
