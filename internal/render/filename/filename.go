// Package filename renders a single file's name cell: colour by kind or
// extension, an optional classify suffix (*/|@=), an optional icon glyph,
// and symlink arrow/target rendering — ported from
// `original_source/src/output/file_name.rs`.
package filename

import (
	"strings"

	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/icons"
	"github.com/dylanreedx/exa-go/internal/style"
	"github.com/dylanreedx/exa-go/internal/theme"
)

// Classify controls whether a type-indicator suffix is appended.
type Classify int

const (
	JustFilenames Classify = iota
	AddFileIndicators
)

// LinkStyle controls how a symlink's target is shown.
type LinkStyle int

const (
	LinkJustFilenames LinkStyle = iota
	LinkFullLinkPaths
)

type Options struct {
	Classify  Classify
	LinkStyle LinkStyle
	ShowIcons bool
}

// Paint renders one file's name cell, consulting th for kind and extension
// colours and the icons package for the optional icon glyph.
func Paint(f fsmodel.File, th theme.Theme, opts Options) cell.TextCell {
	out := cell.TextCell{}

	if opts.ShowIcons {
		out = out.Append(cell.Plain(icons.For(f) + " "))
	}

	out = out.Append(paintName(f.Name, nameStyle(f, th), th.Styles.ControlChar))

	if f.IsSymlink && f.LinkTarget != nil {
		out = out.Append(renderLinkArrow(f, th, opts))
	} else if opts.Classify == AddFileIndicators {
		if c := classifyChar(f); c != "" {
			out = out.Append(cell.Plain(c))
		}
	}

	return out
}

func renderLinkArrow(f fsmodel.File, th theme.Theme, opts Options) cell.TextCell {
	arrow := cell.Plain(" -> ")

	switch f.LinkTarget.Kind {
	case fsmodel.LinkOk:
		target := f.LinkTarget.Target
		name := target.Name
		if opts.LinkStyle == LinkFullLinkPaths {
			name = f.LinkTarget.Path
		}
		targetCell := paintName(name, nameStyle(*target, th), th.Styles.ControlChar)
		if opts.Classify == AddFileIndicators {
			if c := classifyChar(*target); c != "" {
				targetCell = targetCell.Append(cell.Plain(c))
			}
		}
		return arrow.Append(targetCell)
	case fsmodel.LinkBroken:
		brokenStyle := th.Styles.BrokenSymlink.Overlay(th.Styles.BrokenPathOverlay)
		return arrow.Append(paintName(f.LinkTarget.Path, brokenStyle, th.Styles.ControlChar))
	default: // LinkErr
		return cell.TextCell{}
	}
}

// nameStyle resolves a file's colour: symlink-to-broken-target overrides
// everything; otherwise kind colour, then extension colour, then default,
// matching `FileStyle::style`'s resolution order.
func nameStyle(f fsmodel.File, th theme.Theme) style.Style {
	if f.IsSymlink && f.LinkTarget != nil && f.LinkTarget.Kind == fsmodel.LinkBroken {
		return th.Styles.BrokenSymlink
	}
	if s, ok := kindStyle(f, th); ok {
		return s
	}
	if s, ok := th.Extensions.ColourFile(f.Name); ok {
		return s
	}
	return style.Style{}
}

func kindStyle(f fsmodel.File, th theme.Theme) (style.Style, bool) {
	perms := f.Meta.Permissions
	switch {
	case f.IsDirectory():
		return th.Styles.FileKinds.Directory, true
	case f.Meta.FileType == fields.TypeFile && (perms.UserExecute || perms.GroupExecute || perms.OtherExecute):
		return th.Styles.FileKinds.Executable, true
	case f.IsSymlink:
		return th.Styles.FileKinds.Symlink, true
	case f.Meta.FileType == fields.TypePipe:
		return th.Styles.FileKinds.Pipe, true
	case f.Meta.FileType == fields.TypeBlockDevice:
		return th.Styles.FileKinds.BlockDevice, true
	case f.Meta.FileType == fields.TypeCharDevice:
		return th.Styles.FileKinds.CharDevice, true
	case f.Meta.FileType == fields.TypeSocket:
		return th.Styles.FileKinds.Socket, true
	case f.Meta.FileType == fields.TypeSpecial:
		return th.Styles.FileKinds.Special, true
	default:
		return style.Style{}, false
	}
}

func classifyChar(f fsmodel.File) string {
	perms := f.Meta.Permissions
	switch {
	case f.Meta.FileType == fields.TypeFile && (perms.UserExecute || perms.GroupExecute || perms.OtherExecute):
		return "*"
	case f.IsDirectory():
		return "/"
	case f.Meta.FileType == fields.TypePipe:
		return "|"
	case f.IsSymlink:
		return "@"
	case f.Meta.FileType == fields.TypeSocket:
		return "="
	default:
		return ""
	}
}

// paintName renders name in nameSt, splitting out any raw control
// characters into their caret-notation form painted in ccSt (§4.6 step 2),
// so an odd filename can't corrupt the terminal and its escape markers
// stand out from the rest of the name.
func paintName(name string, nameSt, ccSt style.Style) cell.TextCell {
	if !strings.ContainsFunc(name, isControlByte) {
		return cell.NewCell(nameSt, name)
	}

	out := cell.TextCell{}
	var plain strings.Builder
	flushPlain := func() {
		if plain.Len() > 0 {
			out = out.Append(cell.NewCell(nameSt, plain.String()))
			plain.Reset()
		}
	}

	for _, r := range name {
		if isControlByte(r) {
			flushPlain()
			out = out.Append(cell.NewCell(ccSt, "^"+string(rune(byte(r)^0x40))))
			continue
		}
		plain.WriteRune(r)
	}
	flushPlain()
	return out
}

func isControlByte(r rune) bool { return r < 0x20 || r == 0x7f }
