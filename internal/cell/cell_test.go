package cell

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/style"
)

func TestWidthInvariantIndependentOfStyle(t *testing.T) {
	plain := Plain("hello")
	styled := NewCell(style.Fg(style.ColourRed).BoldOn(), "hello")

	if plain.Width != styled.Width {
		t.Fatalf("width should not depend on style: plain=%d styled=%d", plain.Width, styled.Width)
	}
	if plain.Width != 5 {
		t.Fatalf("expected width 5, got %d", plain.Width)
	}
}

func TestAppendSumsWidths(t *testing.T) {
	a := Plain("ab")
	b := Plain("cde")
	joined := a.Append(b)

	if joined.Width != a.Width+b.Width {
		t.Fatalf("expected summed width %d, got %d", a.Width+b.Width, joined.Width)
	}
	if len(joined.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(joined.Spans))
	}
}

func TestPadRightReachesTargetWidth(t *testing.T) {
	c := Plain("ab").PadRight(5)
	if c.Width != 5 {
		t.Fatalf("expected width 5, got %d", c.Width)
	}
}

func TestPadRightNoopWhenAlreadyWideEnough(t *testing.T) {
	c := Plain("abcdef")
	padded := c.PadRight(3)
	if padded.Width != c.Width {
		t.Fatalf("expected no change, got width %d", padded.Width)
	}
}
