package theme

import "github.com/dylanreedx/exa-go/internal/style"

// SizeScale holds one style per order-of-magnitude step (bytes, kilo, mega,
// giga, huge), used for both the numeric and the unit part of a size cell.
type SizeScale struct {
	Byte, Kilo, Mega, Giga, Huge style.Style
}

func uniformScale(s style.Style) SizeScale {
	return SizeScale{Byte: s, Kilo: s, Mega: s, Giga: s, Huge: s}
}

// UiStyles is every styleable slot exa paints, grouped the way
// ui_styles.rs groups them. Any field left at its zero value renders
// unstyled.
type UiStyles struct {
	FileKinds struct {
		Directory, Symlink, Pipe, BlockDevice, CharDevice, Socket, Special, Executable style.Style
	}

	Perms struct {
		UserRead, UserWrite, UserExecuteFile, UserExecuteOther style.Style
		GroupRead, GroupWrite, GroupExecute                    style.Style
		OtherRead, OtherWrite, OtherExecute                    style.Style
		SpecialUserFile, SpecialOther                          style.Style
	}

	Size struct {
		Number, Unit SizeScale
	}

	Users struct {
		UserYou, UserNotYou, GroupYours, GroupNotYours style.Style
	}

	Links struct {
		Normal, MultiLinkFile style.Style
	}

	Git struct {
		New, Modified, Deleted, Renamed, TypeChange, Ignored, Conflicted style.Style
	}

	// FileTypes is the default-classifier palette (§6): the style each of
	// the ten recognised-by-name-or-extension categories paints with when
	// neither LS_COLORS nor EXA_COLORS overrides it.
	FileTypes struct {
		Image, Video, Music, Lossless, Crypto, Document, Compressed, Temp, Immediate, Compiled style.Style
	}

	Punctuation       style.Style
	Date              style.Style
	Inode             style.Style
	Blocksize         style.Style
	Octal             style.Style
	Header            style.Style
	SymlinkPath       style.Style
	ControlChar       style.Style
	BrokenSymlink     style.Style
	BrokenPathOverlay style.Style
}

// setNumberStyle and setUnitStyle assign the same style to all five
// magnitude steps at once — the LS/EXA "sn"/"sb" two-letter codes are
// coarser than exa's own five-step gradient scale.
func (u *UiStyles) setNumberStyle(s style.Style) { u.Size.Number = uniformScale(s) }
func (u *UiStyles) setUnitStyle(s style.Style)   { u.Size.Unit = uniformScale(s) }
