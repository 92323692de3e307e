package style

import "testing"

func TestFromSGR(t *testing.T) {
	cases := []struct {
		name  string
		value string
		check func(t *testing.T, s Style)
	}{
		{
			name:  "repeated bold codes collapse to bold only",
			value: "1;1;1;1;1",
			check: func(t *testing.T, s Style) {
				if !s.Bold {
					t.Fatal("expected bold")
				}
				if s.HasForeground || s.HasBackground {
					t.Fatal("expected no colour")
				}
			},
		},
		{
			name:  "256-colour foreground",
			value: "38;5;149",
			check: func(t *testing.T, s Style) {
				if !s.HasForeground || s.Foreground.Kind != ColourFixed || s.Foreground.Fixed != 149 {
					t.Fatalf("expected fixed 149, got %+v", s.Foreground)
				}
			},
		},
		{
			name:  "out of range 256-colour background is ignored",
			value: "48;5;999",
			check: func(t *testing.T, s Style) {
				if s.HasBackground {
					t.Fatalf("expected no background, got %+v", s.Background)
				}
			},
		},
		{
			name:  "truecolour foreground",
			value: "38;2;255;100;0",
			check: func(t *testing.T, s Style) {
				if !s.HasForeground || s.Foreground.Kind != ColourRGB {
					t.Fatalf("expected rgb colour, got %+v", s.Foreground)
				}
				if s.Foreground.R != 255 || s.Foreground.G != 100 || s.Foreground.B != 0 {
					t.Fatalf("unexpected rgb components: %+v", s.Foreground)
				}
			},
		},
		{
			name:  "named colours",
			value: "31;42",
			check: func(t *testing.T, s Style) {
				if !s.HasForeground || s.Foreground.Named != 1 {
					t.Fatalf("expected fg red, got %+v", s.Foreground)
				}
				if !s.HasBackground || s.Background.Named != 2 {
					t.Fatalf("expected bg green, got %+v", s.Background)
				}
			},
		},
		{
			name:  "unrecognised codes are ignored without breaking earlier ones",
			value: "1;99;4",
			check: func(t *testing.T, s Style) {
				if !s.Bold || !s.Underline {
					t.Fatalf("expected bold+underline, got %+v", s)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.check(t, FromSGR(c.value))
		})
	}
}

func TestOverlayOrsAttributesAndReplacesColour(t *testing.T) {
	base := Fg(ColourRed).BoldOn()
	overlay := Style{Underline: true, HasForeground: true, Foreground: ColourBlue}

	got := base.Overlay(overlay)

	if !got.Bold || !got.Underline {
		t.Fatalf("expected both attributes set, got %+v", got)
	}
	if got.Foreground != ColourBlue {
		t.Fatalf("expected overlay colour to win, got %+v", got.Foreground)
	}
}

func TestPlainStyleHasNoAttributes(t *testing.T) {
	if !(Style{}).Plain() {
		t.Fatal("zero value Style should be Plain")
	}
	if (Fg(ColourRed)).Plain() {
		t.Fatal("styled Style should not be Plain")
	}
}
