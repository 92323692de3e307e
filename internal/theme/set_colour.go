package theme

import "github.com/dylanreedx/exa-go/internal/style"

// setLS applies one standard LS_COLORS two-letter code to u, reporting
// whether it recognised the code — ported from ui_styles.rs's
// `UiStyles::set_ls`. Codes this function doesn't recognise are left for
// the caller to try as an extension glob instead.
func (u *UiStyles) setLS(code string, s style.Style) bool {
	switch code {
	case "di":
		u.FileKinds.Directory = s
	case "ln":
		u.FileKinds.Symlink = s
	case "pi":
		u.FileKinds.Pipe = s
	case "so":
		u.FileKinds.Socket = s
	case "bd":
		u.FileKinds.BlockDevice = s
	case "cd":
		u.FileKinds.CharDevice = s
	case "ex":
		u.FileKinds.Executable = s
	case "mi":
		u.BrokenSymlink = s
	case "or":
		u.BrokenSymlink = s
	default:
		return false
	}
	return true
}

// setEXA applies one exa-specific two-letter EXA_COLORS code to u, ported
// from ui_styles.rs's `UiStyles::set_exa`.
func (u *UiStyles) setEXA(code string, s style.Style) bool {
	switch code {
	case "ur":
		u.Perms.UserRead = s
	case "uw":
		u.Perms.UserWrite = s
	case "ux":
		u.Perms.UserExecuteFile = s
	case "ue":
		u.Perms.UserExecuteOther = s
	case "gr":
		u.Perms.GroupRead = s
	case "gw":
		u.Perms.GroupWrite = s
	case "gx":
		u.Perms.GroupExecute = s
	case "tr":
		u.Perms.OtherRead = s
	case "tw":
		u.Perms.OtherWrite = s
	case "tx":
		u.Perms.OtherExecute = s
	case "su":
		u.Perms.SpecialUserFile = s
	case "sf":
		u.Perms.SpecialOther = s
	case "sn", "nb":
		u.setNumberStyle(s)
	case "sb", "ub":
		u.setUnitStyle(s)
	case "df":
		u.Date = s
	case "uu":
		u.Users.UserYou = s
	case "un":
		u.Users.UserNotYou = s
	case "gu":
		u.Users.GroupYours = s
	case "gn":
		u.Users.GroupNotYours = s
	case "lp":
		u.Links.Normal = s
	case "lm":
		u.Links.MultiLinkFile = s
	case "ga":
		u.Git.New = s
	case "gm":
		u.Git.Modified = s
	case "gd":
		u.Git.Deleted = s
	case "gv":
		u.Git.Renamed = s
	case "gt":
		u.Git.TypeChange = s
	case "gi":
		u.Git.Ignored = s
	case "gc":
		u.Git.Conflicted = s
	case "xx":
		u.Punctuation = s
	case "in":
		u.Inode = s
	case "bl":
		u.Blocksize = s
	case "oc":
		u.Octal = s
	case "hd":
		u.Header = s
	case "lc":
		u.SymlinkPath = s
	case "cc":
		u.ControlChar = s
	case "bO":
		u.BrokenPathOverlay = s
	default:
		return false
	}
	return true
}
