// Package icons maps a file to a glyph keyed by its extension, name, or
// (for directories) its directory name, for the --icons flag. Adapted
// from the teacher's tui/icons package, which did the same lookup for a
// project tree sidebar.
package icons

import (
	"strings"

	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
)

var useNerdFonts bool

// SetNerdFonts switches between plain Unicode glyphs and Nerd Font
// codepoints; the view dispatcher always selects the plain Unicode table.
func SetNerdFonts(enabled bool) { useNerdFonts = enabled }

var extIcons = map[string]string{
	"js": "λ", "ts": "λ", "jsx": "λ", "tsx": "λ",
	"svelte": "◈", "go": "◆", "md": "≡",
	"json": "⚙", "toml": "⚙", "yaml": "⚙", "yml": "⚙",
	"css": "◎", "scss": "◎",
	"graphql": "◇", "gql": "◇",
	"html": "◁", "sql": "▦", "sh": "▸",
	"py": "◆", "rs": "◆",
}

var nerdNameIcons = map[string]string{
	"Dockerfile":   "",
	"Makefile":     "",
	".gitignore":   "",
	".env":         "",
	"go.mod":       "",
	"go.sum":       "",
	"package.json": "",
}

var nerdExtIcons = map[string]string{
	"go": "", "ts": "", "js": "", "jsx": "", "tsx": "",
	"py": "", "rs": "", "svelte": "", "md": "",
	"json": "", "css": "", "scss": "", "html": "",
	"toml": "", "yaml": "", "yml": "",
	"graphql": "", "gql": "", "sql": "", "sh": "",
	"rb": "", "java": "", "lua": "", "c": "",
	"cpp": "", "h": "", "vue": "", "php": "",
	"swift": "", "kt": "", "dart": "",
}

var dirIcons = map[string]string{
	"src": "▪", "lib": "▪", "components": "▪", "routes": "▪",
	"models": "▪", "resolvers": "▪", "scripts": "▸",
	"docs": "≡", "test": "◌", "tests": "◌",
}

var nerdDirIcons = map[string]string{
	"src": "", "lib": "", "components": "",
	"routes": "", "test": "", "tests": "",
	"docs": "", "scripts": "", "cmd": "",
	"internal": "", "pkg": "", "api": "", "models": "",
}

// For returns f's icon glyph: directory name lookup for directories,
// extension lookup for everything else (preceded by an exact-name lookup
// in the Nerd Font table only), falling back to a generic file/folder glyph.
func For(f fsmodel.File) string {
	if f.Meta.FileType == fields.TypeDirectory {
		return forDir(f.Name)
	}

	if useNerdFonts {
		if icon, ok := nerdNameIcons[f.Name]; ok {
			return icon
		}
		if icon, ok := nerdExtIcons[f.Extension()]; ok {
			return icon
		}
		return "\uf15b"
	}

	if icon, ok := extIcons[f.Extension()]; ok {
		return icon
	}
	return "○"
}

func forDir(name string) string {
	lower := strings.ToLower(name)
	if useNerdFonts {
		if icon, ok := nerdDirIcons[lower]; ok {
			return icon
		}
		return ""
	}
	if icon, ok := dirIcons[lower]; ok {
		return icon
	}
	return "▪"
}
