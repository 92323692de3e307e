package tree

import (
	"reflect"
	"testing"
)

func TestNewRowSequence(t *testing.T) {
	rows := []Params{
		{Depth: 0, Last: false},
		{Depth: 1, Last: false},
		{Depth: 2, Last: false},
		{Depth: 2, Last: true},
		{Depth: 1, Last: true},
		{Depth: 2, Last: false},
		{Depth: 2, Last: true},
	}
	want := [][]Part{
		{},
		{Edge},
		{Line, Edge},
		{Line, Corner},
		{Corner},
		{Blank, Edge},
		{Blank, Corner},
	}

	var trunk Trunk
	for i, p := range rows {
		got := trunk.NewRow(p)
		if len(got) == 0 {
			got = []Part{}
		}
		if !reflect.DeepEqual(got, want[i]) {
			t.Fatalf("row %d: want %v, got %v", i, want[i], got)
		}
	}
}

func TestASCIIArt(t *testing.T) {
	cases := map[Part]string{
		Edge:   "├──",
		Line:   "│  ",
		Corner: "└──",
		Blank:  "   ",
	}
	for part, want := range cases {
		if got := part.ASCIIArt(); got != want {
			t.Fatalf("part %v: want %q, got %q", part, want, got)
		}
	}
}
