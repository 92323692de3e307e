package theme

import (
	"path/filepath"
	"strings"

	"github.com/dylanreedx/exa-go/internal/style"
	"github.com/dylanreedx/exa-go/internal/xlog"
)

// extensionRule is one glob-or-suffix -> style mapping added by LS_COLORS
// (a `*.ext=` pattern) or EXA_COLORS (a bare extension name).
type extensionRule struct {
	pattern string
	style   style.Style
	exact   bool // match the whole file name, not just its extension
}

// ExtensionMappings resolves a file name to a style by its extension or
// glob pattern; rules are kept in the order they were added, and
// ColourFile consults the newest first.
type ExtensionMappings struct {
	rules []extensionRule
}

func (m *ExtensionMappings) add(pattern string, s style.Style) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		xlog.Warn("skipping bad colour glob %q: %v", pattern, err)
		return
	}
	m.rules = append(m.rules, extensionRule{pattern: pattern, style: s})
}

// addName registers a rule matched against the whole file name (e.g. a
// build file like "Makefile" that has no extension to key off of), rather
// than against its extension or a glob.
func (m *ExtensionMappings) addName(name string, s style.Style) {
	m.rules = append(m.rules, extensionRule{pattern: name, style: s, exact: true})
}

// ColourFile looks up name against every rule in reverse order, so a rule
// added later (EXA_COLORS overriding LS_COLORS, say) wins — matching
// ExtensionMappings::colour_file's `.rev()` scan in the original.
func (m *ExtensionMappings) ColourFile(name string) (style.Style, bool) {
	for i := len(m.rules) - 1; i >= 0; i-- {
		r := m.rules[i]
		if r.exact {
			if strings.EqualFold(r.pattern, name) {
				return r.style, true
			}
			continue
		}
		if matchesRule(r.pattern, name) {
			return r.style, true
		}
	}
	return style.Style{}, false
}

func (m *ExtensionMappings) IsNonEmpty() bool { return len(m.rules) > 0 }

func matchesRule(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		ext := pattern
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			return false
		}
		return strings.EqualFold(name[dot+1:], ext)
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}

// defaultExtensionClassifier is exa's fallback "recognised extension"
// table (documents, images, archives, and so on), used when neither
// LS_COLORS nor EXA_COLORS overrides an extension, and the `reset`
// keyword hasn't disabled it. The ten categories and their member
// extensions/names are ported straight from
// `original_source/src/info/filetype.rs`; colours come from u.FileTypes,
// resolved by the built-in palette (§6).
func defaultExtensionClassifier(u UiStyles) *ExtensionMappings {
	m := &ExtensionMappings{}

	groups := []struct {
		style style.Style
		exts  []string
	}{
		{u.FileTypes.Image, []string{
			"png", "jpeg", "jpg", "gif", "bmp", "tiff", "tif",
			"ppm", "pgm", "pbm", "pnm", "webp", "raw", "arw",
			"svg", "stl", "eps", "dvi", "ps", "cbr",
			"cbz", "xpm", "ico",
		}},
		{u.FileTypes.Video, []string{
			"avi", "flv", "m2v", "mkv", "mov", "mp4", "mpeg",
			"mpg", "ogm", "ogv", "vob", "wmv",
		}},
		{u.FileTypes.Music, []string{
			"aac", "m4a", "mp3", "ogg", "wma",
		}},
		{u.FileTypes.Lossless, []string{
			"alac", "ape", "flac", "wav",
		}},
		{u.FileTypes.Crypto, []string{
			"asc", "enc", "gpg", "pgp", "sig", "signature", "pfx", "p12",
		}},
		{u.FileTypes.Document, []string{
			"djvu", "doc", "docx", "dvi", "eml", "eps", "fotd",
			"odp", "odt", "pdf", "ppt", "pptx", "rtf",
			"xls", "xlsx",
		}},
		{u.FileTypes.Compressed, []string{
			"zip", "tar", "Z", "gz", "bz2", "a", "ar", "7z",
			"iso", "dmg", "tc", "rar", "par", "tgz",
		}},
		{u.FileTypes.Temp, []string{
			"tmp", "swp", "swo", "swn", "bak",
		}},
		{u.FileTypes.Compiled, []string{
			"class", "elc", "hi", "o", "pyc",
		}},
	}

	for _, g := range groups {
		for _, e := range g.exts {
			m.add(e, g.style)
		}
	}

	// is_temp also matches by name shape rather than extension: a trailing
	// "~" (editor backup) or a leading-and-trailing "#" (emacs autosave).
	m.add("*~", u.FileTypes.Temp)
	m.add("#*#", u.FileTypes.Temp)

	// is_immediate is purely name-based: README* by prefix, plus a fixed
	// set of well-known build-entry file names.
	m.add("README*", u.FileTypes.Immediate)
	for _, name := range []string{
		"Makefile", "Cargo.toml", "SConstruct", "CMakeLists.txt",
		"build.gradle", "Rakefile", "Gruntfile.js", "Gruntfile.coffee",
	} {
		m.addName(name, u.FileTypes.Immediate)
	}

	return m
}
