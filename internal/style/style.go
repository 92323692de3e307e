// Package style holds the colour+attribute model exa paints every cell
// with, and the SGR parser that builds one from an LS_COLORS/EXA_COLORS
// value string. Rendering itself is handed off to lipgloss.
package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourKind distinguishes the three ways a colour can be specified, mirroring
// the three SGR colour forms (named 30-37/40-47, 256-colour 38;5;N, and
// truecolour 38;2;R;G;B).
type ColourKind int

const (
	ColourNone ColourKind = iota
	ColourNamed
	ColourFixed
	ColourRGB
)

// Named colour indices, matching the eight standard SGR colours in order.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

type Colour struct {
	Kind  ColourKind
	Named uint8
	Fixed uint8
	R, G, B uint8
}

func NamedColour(n uint8) Colour { return Colour{Kind: ColourNamed, Named: n} }

// The eight standard colours, ready to use as Fg(style.ColourBlue) etc.
var (
	ColourBlack  = NamedColour(Black)
	ColourRed    = NamedColour(Red)
	ColourGreen  = NamedColour(Green)
	ColourYellow = NamedColour(Yellow)
	ColourBlue   = NamedColour(Blue)
	ColourPurple = NamedColour(Purple)
	ColourCyan   = NamedColour(Cyan)
	ColourWhite  = NamedColour(White)
)
func FixedColour(n uint8) Colour { return Colour{Kind: ColourFixed, Fixed: n} }
func RGBColour(r, g, b uint8) Colour { return Colour{Kind: ColourRGB, R: r, G: g, B: b} }

func (c Colour) lipgloss() lipgloss.Color {
	switch c.Kind {
	case ColourNamed:
		names := [8]string{"0", "1", "2", "3", "4", "5", "6", "7"}
		return lipgloss.Color(names[c.Named%8])
	case ColourFixed:
		return lipgloss.Color(strconv.Itoa(int(c.Fixed)))
	case ColourRGB:
		return lipgloss.Color("#" + hex(c.R) + hex(c.G) + hex(c.B))
	default:
		return ""
	}
}

func hex(b uint8) string {
	s := strconv.FormatInt(int64(b), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Style is the full set of attributes a single SGR value string, or a
// handful of them overlaid, can express.
type Style struct {
	Foreground, Background             Colour
	HasForeground, HasBackground       bool
	Bold, Dimmed, Italic, Underline    bool
	Blink, Reverse, Hidden, Strikethrough bool
}

func (s Style) Bg(c Colour) Style {
	s.Background, s.HasBackground = c, true
	return s
}

// Fg builds a Style with just a foreground colour set — the common case for
// the default palette (e.g. Fg(ColourBlue).BoldOn()).
func Fg(c Colour) Style { return Style{Foreground: c, HasForeground: true} }

func (s Style) BoldOn() Style          { s.Bold = true; return s }
func (s Style) UnderlineOn() Style     { s.Underline = true; return s }
func (s Style) DimmedOn() Style        { s.Dimmed = true; return s }
func (s Style) On(bg Colour) Style     { return s.Bg(bg) }

// Overlay copies fg/bg from the overlay when present and ORs in every
// attribute bit, so e.g. broken_symlink-on-broken_path_overlay keeps the
// base colour but gains underline.
func (base Style) Overlay(overlay Style) Style {
	out := base
	if overlay.HasForeground {
		out.Foreground, out.HasForeground = overlay.Foreground, true
	}
	if overlay.HasBackground {
		out.Background, out.HasBackground = overlay.Background, true
	}
	out.Bold = out.Bold || overlay.Bold
	out.Dimmed = out.Dimmed || overlay.Dimmed
	out.Italic = out.Italic || overlay.Italic
	out.Underline = out.Underline || overlay.Underline
	out.Blink = out.Blink || overlay.Blink
	out.Reverse = out.Reverse || overlay.Reverse
	out.Hidden = out.Hidden || overlay.Hidden
	out.Strikethrough = out.Strikethrough || overlay.Strikethrough
	return out
}

// Render paints s around the given text using lipgloss, or returns text
// unchanged when colours are turned off entirely by the caller (an empty,
// attribute-less Style).
func (s Style) Render(text string) string {
	l := lipgloss.NewStyle()
	if s.HasForeground {
		l = l.Foreground(s.Foreground.lipgloss())
	}
	if s.HasBackground {
		l = l.Background(s.Background.lipgloss())
	}
	if s.Bold {
		l = l.Bold(true)
	}
	if s.Dimmed {
		l = l.Faint(true)
	}
	if s.Italic {
		l = l.Italic(true)
	}
	if s.Underline {
		l = l.Underline(true)
	}
	if s.Blink {
		l = l.Blink(true)
	}
	if s.Reverse {
		l = l.Reverse(true)
	}
	if s.Strikethrough {
		l = l.Strikethrough(true)
	}
	if s.Hidden {
		return strings.Repeat(" ", len(text))
	}
	return l.Render(text)
}

// Plain reports whether this style has no colour and no attribute set,
// i.e. rendering it is a no-op.
func (s Style) Plain() bool {
	return !s.HasForeground && !s.HasBackground &&
		!s.Bold && !s.Dimmed && !s.Italic && !s.Underline &&
		!s.Blink && !s.Reverse && !s.Hidden && !s.Strikethrough
}

// FromSGR parses a semicolon-delimited LS_COLORS/EXA_COLORS value such as
// "38;5;149" or "1;4" into a Style. Unrecognised numeric codes are ignored,
// matching the original parser's lenient behaviour: a bad trailing code
// doesn't invalidate the codes before it.
func FromSGR(value string) Style {
	var s Style
	parts := strings.Split(value, ";")
	for i := 0; i < len(parts); i++ {
		tok := strings.TrimLeft(parts[i], "0")
		switch tok {
		case "1":
			s.Bold = true
		case "2":
			s.Dimmed = true
		case "3":
			s.Italic = true
		case "4":
			s.Underline = true
		case "5":
			s.Blink = true
		case "7":
			s.Reverse = true
		case "8":
			s.Hidden = true
		case "9":
			s.Strikethrough = true
		case "30", "31", "32", "33", "34", "35", "36", "37":
			n, _ := strconv.Atoi(tok)
			s.Foreground, s.HasForeground = NamedColour(uint8(n-30)), true
		case "40", "41", "42", "43", "44", "45", "46", "47":
			n, _ := strconv.Atoi(tok)
			s.Background, s.HasBackground = NamedColour(uint8(n-40)), true
		case "38":
			if c, n := parseHighColour(parts, i+1); n > 0 {
				s.Foreground, s.HasForeground = c, true
				i += n
			}
		case "48":
			if c, n := parseHighColour(parts, i+1); n > 0 {
				s.Background, s.HasBackground = c, true
				i += n
			}
		default:
			// unrecognised code: ignored, same as upstream
		}
	}
	return s
}

// parseHighColour consumes the tokens following a "38"/"48" marker: either
// "5;N" (256-colour) or "2;R;G;B" (truecolour). It returns the zero Colour
// and 0 consumed tokens if the continuation is malformed or the values are
// out of range, mirroring the silent-skip behaviour of the original parser.
func parseHighColour(parts []string, at int) (Colour, int) {
	if at >= len(parts) {
		return Colour{}, 0
	}
	switch strings.TrimLeft(parts[at], "0") {
	case "5":
		if at+1 >= len(parts) {
			return Colour{}, 0
		}
		n, err := strconv.Atoi(parts[at+1])
		if err != nil || n < 0 || n > 255 {
			return Colour{}, 0
		}
		return FixedColour(uint8(n)), 2
	case "2":
		if at+3 >= len(parts) {
			return Colour{}, 0
		}
		r, errR := strconv.Atoi(parts[at+1])
		g, errG := strconv.Atoi(parts[at+2])
		b, errB := strconv.Atoi(parts[at+3])
		if errR != nil || errG != nil || errB != nil ||
			r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return Colour{}, 0
		}
		return RGBColour(uint8(r), uint8(g), uint8(b)), 4
	default:
		return Colour{}, 0
	}
}
