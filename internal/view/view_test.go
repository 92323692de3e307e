package view

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/render/grid"
)

func TestWorsePicksHigherExitCode(t *testing.T) {
	if worse(ExitOK, ExitFileError) != ExitFileError {
		t.Fatal("expected FileError to beat OK")
	}
	if worse(ExitOptionsError, ExitFileError) != ExitOptionsError {
		t.Fatal("expected OptionsError to stay the worst code seen")
	}
	if worse(ExitOK, ExitOK) != ExitOK {
		t.Fatal("expected OK to stay OK")
	}
}

func TestIndexAtTopToBottomFillsColumnsBeforeRows(t *testing.T) {
	fit := grid.Fit{Columns: 2, Rows: 3, Direction: grid.TopToBottom}
	// column-major: col 0 = indices 0,1,2; col 1 = indices 3,4,5
	if indexAt(fit, 0, 0) != 0 || indexAt(fit, 2, 0) != 2 || indexAt(fit, 0, 1) != 3 {
		t.Fatalf("unexpected column-major indices: %d %d %d", indexAt(fit, 0, 0), indexAt(fit, 2, 0), indexAt(fit, 0, 1))
	}
}

func TestIndexAtLeftToRightFillsRowsBeforeColumns(t *testing.T) {
	fit := grid.Fit{Columns: 2, Rows: 3, Direction: grid.LeftToRight}
	if indexAt(fit, 0, 1) != 1 || indexAt(fit, 1, 0) != 2 {
		t.Fatalf("unexpected row-major indices")
	}
}
