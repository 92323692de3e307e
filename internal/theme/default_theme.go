package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dylanreedx/exa-go/internal/style"
)

// ColourScale selects between a single fixed size colour and a magnitude
// gradient (§4.3 step 2, GLOSSARY "Gradient scale").
type ColourScale int

const (
	ScaleFixed ColourScale = iota
	ScaleGradient
)

// defaultTheme builds the built-in palette (§6 "Default palette"), exactly
// matching default_theme.rs: directory=blue bold, symlink=cyan, pipe=yellow,
// device files=yellow bold, socket=red bold, special=yellow, executable=
// green bold, and so on for every other slot.
func defaultTheme(scale ColourScale) UiStyles {
	var u UiStyles

	u.FileKinds.Directory = style.Fg(style.ColourBlue).BoldOn()
	u.FileKinds.Symlink = style.Fg(style.ColourCyan)
	u.FileKinds.Pipe = style.Fg(style.ColourYellow)
	u.FileKinds.BlockDevice = style.Fg(style.ColourYellow).BoldOn()
	u.FileKinds.CharDevice = style.Fg(style.ColourYellow).BoldOn()
	u.FileKinds.Socket = style.Fg(style.ColourRed).BoldOn()
	u.FileKinds.Special = style.Fg(style.ColourYellow)
	u.FileKinds.Executable = style.Fg(style.ColourGreen).BoldOn()

	u.Perms.UserRead = style.Fg(style.ColourYellow).BoldOn()
	u.Perms.UserWrite = style.Fg(style.ColourRed).BoldOn()
	u.Perms.UserExecuteFile = style.Fg(style.ColourGreen).BoldOn().UnderlineOn()
	u.Perms.UserExecuteOther = style.Fg(style.ColourGreen).BoldOn()
	u.Perms.GroupRead = style.Fg(style.ColourYellow)
	u.Perms.GroupWrite = style.Fg(style.ColourRed)
	u.Perms.GroupExecute = style.Fg(style.ColourGreen)
	u.Perms.OtherRead = style.Fg(style.ColourYellow)
	u.Perms.OtherWrite = style.Fg(style.ColourRed)
	u.Perms.OtherExecute = style.Fg(style.ColourGreen)
	u.Perms.SpecialUserFile = style.Fg(style.ColourPurple)
	u.Perms.SpecialOther = style.Fg(style.ColourPurple)

	if scale == ScaleGradient {
		u.Size.Number = gradientScale()
		u.Size.Unit = gradientScale()
	} else {
		u.setNumberStyle(style.Fg(style.ColourGreen))
		u.setUnitStyle(style.Fg(style.ColourGreen))
	}

	u.Users.UserYou = style.Fg(style.ColourYellow).BoldOn()
	u.Users.GroupYours = style.Fg(style.ColourYellow).BoldOn()

	u.Links.Normal = style.Fg(style.ColourRed).BoldOn()
	u.Links.MultiLinkFile = style.Fg(style.ColourRed).On(style.ColourYellow)

	u.Git.New = style.Fg(style.ColourGreen)
	u.Git.Modified = style.Fg(style.ColourBlue)
	u.Git.Deleted = style.Fg(style.ColourRed)
	u.Git.Renamed = style.Fg(style.ColourYellow)
	u.Git.TypeChange = style.Fg(style.ColourPurple)
	u.Git.Ignored = style.Fg(style.ColourWhite).DimmedOn()
	u.Git.Conflicted = style.Fg(style.ColourRed)

	u.FileTypes.Image = style.Fg(style.FixedColour(133))
	u.FileTypes.Video = style.Fg(style.FixedColour(135))
	u.FileTypes.Music = style.Fg(style.FixedColour(92))
	u.FileTypes.Lossless = style.Fg(style.FixedColour(93))
	u.FileTypes.Crypto = style.Fg(style.FixedColour(109))
	u.FileTypes.Document = style.Fg(style.FixedColour(105))
	u.FileTypes.Compressed = style.Fg(style.ColourRed)
	u.FileTypes.Temp = style.Fg(style.FixedColour(244))
	u.FileTypes.Immediate = style.Fg(style.ColourYellow).BoldOn().UnderlineOn()
	u.FileTypes.Compiled = style.Fg(style.FixedColour(137))

	u.Punctuation = style.Fg(style.ColourBlack).BoldOn()
	u.Date = style.Fg(style.ColourBlue)
	u.Inode = style.Fg(style.ColourPurple)
	u.Blocksize = style.Fg(style.ColourCyan)
	u.Octal = style.Fg(style.ColourPurple)
	u.Header = style.Style{Underline: true}
	u.SymlinkPath = style.Fg(style.ColourCyan)
	u.ControlChar = style.Fg(style.ColourRed)
	u.BrokenSymlink = style.Fg(style.ColourRed)
	u.BrokenPathOverlay = style.Style{Underline: true}

	return u
}

// gradientScale is the by-magnitude palette (GLOSSARY "Gradient scale"):
// one fixed named style per magnitude step (byte=green, kilo=bold green,
// mega=yellow, giga=red, huge=purple). No colours are blended.
func gradientScale() SizeScale {
	return SizeScale{
		Byte: style.Fg(style.ColourGreen),
		Kilo: style.Fg(style.ColourGreen).BoldOn(),
		Mega: style.Fg(style.ColourYellow),
		Giga: style.Fg(style.ColourRed),
		Huge: style.Fg(style.ColourPurple),
	}
}

var gradientStops = []colorful.Color{
	{R: 0.13, G: 0.55, B: 0.13}, // green
	{R: 0.85, G: 0.75, B: 0.1},  // yellow
	{R: 0.8, G: 0.2, B: 0.1},    // red
	{R: 0.5, G: 0.1, B: 0.6},    // purple
}

// GradientColour blends across gradientStops at fraction t (0 = smallest
// file, 1 = largest seen) with go-colorful's Luv blending. The size
// column does not call it: --color-scale paints with gradientScale's five
// fixed steps.
func GradientColour(t float64) style.Colour {
	if t <= 0 {
		return rgbFrom(gradientStops[0])
	}
	if t >= 1 {
		return rgbFrom(gradientStops[len(gradientStops)-1])
	}
	segments := len(gradientStops) - 1
	scaled := t * float64(segments)
	idx := int(scaled)
	if idx >= segments {
		idx = segments - 1
	}
	local := scaled - float64(idx)
	blended := gradientStops[idx].BlendLuv(gradientStops[idx+1], local)
	return rgbFrom(blended)
}

func rgbFrom(c colorful.Color) style.Colour {
	r, g, b := c.Clamped().RGB255()
	return style.RGBColour(r, g, b)
}
