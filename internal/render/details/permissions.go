package details

import (
	"strconv"

	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/style"
	"github.com/dylanreedx/exa-go/internal/theme"
)

// RenderPermissions renders the 10-or-11-character symbolic permissions
// cell (type glyph + rwx x3 + optional xattr marker), ported bit-for-bit
// from `original_source/src/output/render/permissions.rs`.
func RenderPermissions(p fields.PermissionsPlus, th theme.UiStyles) cell.TextCell {
	out := cell.NewCell(th.Punctuation, typeChar(p.FileType))

	perm := p.Permissions
	out = out.Append(bit(perm.UserRead, th.Perms.UserRead, th.Punctuation, "r"))
	out = out.Append(bit(perm.UserWrite, th.Perms.UserWrite, th.Punctuation, "w"))
	out = out.Append(userExecuteBit(perm, p.FileType, th))

	out = out.Append(bit(perm.GroupRead, th.Perms.GroupRead, th.Punctuation, "r"))
	out = out.Append(bit(perm.GroupWrite, th.Perms.GroupWrite, th.Punctuation, "w"))
	out = out.Append(groupExecuteBit(perm, th))

	out = out.Append(bit(perm.OtherRead, th.Perms.OtherRead, th.Punctuation, "r"))
	out = out.Append(bit(perm.OtherWrite, th.Perms.OtherWrite, th.Punctuation, "w"))
	out = out.Append(otherExecuteBit(perm, th))

	if p.Xattrs {
		out = out.Append(cell.NewCell(th.Punctuation, "@"))
	}

	return out
}

func typeChar(t fields.Type) string {
	switch t {
	case fields.TypeDirectory:
		return "d"
	case fields.TypeLink:
		return "l"
	case fields.TypePipe:
		return "|"
	case fields.TypeSocket:
		return "s"
	case fields.TypeCharDevice:
		return "c"
	case fields.TypeBlockDevice:
		return "b"
	case fields.TypeSpecial:
		return "?"
	default:
		return "-"
	}
}

func bit(set bool, onStyle, offStyle style.Style, ch string) cell.TextCell {
	if !set {
		return cell.NewCell(offStyle, "-")
	}
	return cell.NewCell(onStyle, ch)
}

// userExecuteBit: dash / x (coloured by whether it's a regular file or
// not) / S (setuid, not executable) / s (setuid, executable).
func userExecuteBit(p fields.Permissions, ft fields.Type, th theme.UiStyles) cell.TextCell {
	switch {
	case !p.UserExecute && !p.Setuid:
		return cell.NewCell(th.Punctuation, "-")
	case p.UserExecute && !p.Setuid && ft == fields.TypeFile:
		return cell.NewCell(th.Perms.UserExecuteFile, "x")
	case p.UserExecute && !p.Setuid:
		return cell.NewCell(th.Perms.UserExecuteOther, "x")
	case !p.UserExecute && p.Setuid:
		return cell.NewCell(th.Perms.SpecialUserFile, "S")
	default:
		return cell.NewCell(th.Perms.SpecialUserFile, "s")
	}
}

func groupExecuteBit(p fields.Permissions, th theme.UiStyles) cell.TextCell {
	switch {
	case !p.GroupExecute && !p.Setgid:
		return cell.NewCell(th.Punctuation, "-")
	case p.GroupExecute && !p.Setgid:
		return cell.NewCell(th.Perms.GroupExecute, "x")
	case !p.GroupExecute && p.Setgid:
		return cell.NewCell(th.Perms.SpecialOther, "S")
	default:
		return cell.NewCell(th.Perms.SpecialOther, "s")
	}
}

func otherExecuteBit(p fields.Permissions, th theme.UiStyles) cell.TextCell {
	switch {
	case !p.OtherExecute && !p.Sticky:
		return cell.NewCell(th.Punctuation, "-")
	case p.OtherExecute && !p.Sticky:
		return cell.NewCell(th.Perms.OtherExecute, "x")
	case !p.OtherExecute && p.Sticky:
		return cell.NewCell(th.Perms.SpecialOther, "T")
	default:
		return cell.NewCell(th.Perms.SpecialOther, "t")
	}
}

// RenderOctal renders the supplemented --octal-permissions column: a
// 4-digit octal mode (setuid/setgid/sticky, user, group, other), ported
// from `original_source/src/output/render/octal.rs`.
func RenderOctal(p fields.Permissions, th theme.UiStyles) cell.TextCell {
	special := 0
	if p.Setuid {
		special |= 4
	}
	if p.Setgid {
		special |= 2
	}
	if p.Sticky {
		special |= 1
	}

	triple := func(r, w, x bool) int {
		n := 0
		if r {
			n |= 4
		}
		if w {
			n |= 2
		}
		if x {
			n |= 1
		}
		return n
	}

	octal := special*1000 +
		triple(p.UserRead, p.UserWrite, p.UserExecute)*100 +
		triple(p.GroupRead, p.GroupWrite, p.GroupExecute)*10 +
		triple(p.OtherRead, p.OtherWrite, p.OtherExecute)

	return cell.NewCell(th.Octal, pad4(octal))
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
