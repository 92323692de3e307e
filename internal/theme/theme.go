// Package theme turns LS_COLORS/EXA_COLORS environment strings plus a few
// CLI flags into the fully-resolved UiStyles and ExtensionMappings a file
// is rendered with — the Go shape of `original_source/src/theme/mod.rs`.
package theme

import (
	"strings"

	"github.com/dylanreedx/exa-go/internal/style"
	"github.com/dylanreedx/exa-go/internal/xlog"
)

func parseSGRValue(val string) style.Style { return style.FromSGR(val) }

// UseColours mirrors exa's --color value: when to paint at all.
type UseColours int

const (
	ColoursAlways UseColours = iota
	ColoursAutomatic
	ColoursNever
)

// Definitions holds the raw LS_COLORS/EXA_COLORS strings, read from the
// environment by the caller so this package stays free of os.Getenv calls.
type Definitions struct {
	LS, EXA string
}

type Options struct {
	UseColours  UseColours
	ColourScale ColourScale
	Definitions Definitions
}

// Theme is the fully resolved palette: built-in styles plus whatever
// LS_COLORS/EXA_COLORS overrode, and the extension classifier to consult
// when nothing more specific applies.
type Theme struct {
	Styles     UiStyles
	Extensions *ExtensionMappings
}

// Build resolves opts against whether stdout is a tty, following
// `Options::to_theme`: Never, or Automatic-without-a-tty, paints nothing
// at all; otherwise the built-in palette is overlaid with the parsed
// environment definitions.
func Build(opts Options, stdoutIsTTY bool) Theme {
	if opts.UseColours == ColoursNever || (opts.UseColours == ColoursAutomatic && !stdoutIsTTY) {
		return Theme{Styles: UiStyles{}, Extensions: &ExtensionMappings{}}
	}

	styles := defaultTheme(opts.ColourScale)
	useDefaultFiletypes := true
	exts := &ExtensionMappings{}

	if opts.Definitions.LS != "" {
		parseLS(opts.Definitions.LS, &styles, exts)
	}
	if opts.Definitions.EXA != "" {
		if isResetDefinition(opts.Definitions.EXA) {
			useDefaultFiletypes = false
		}
		parseEXA(opts.Definitions.EXA, &styles, exts)
	}

	// Truth table from mod.rs: combine the parsed extension rules with the
	// default classifier unless EXA_COLORS explicitly reset it.
	if useDefaultFiletypes {
		defaults := defaultExtensionClassifier(styles)
		merged := &ExtensionMappings{}
		merged.rules = append(merged.rules, defaults.rules...)
		merged.rules = append(merged.rules, exts.rules...)
		exts = merged
	}

	return Theme{Styles: styles, Extensions: exts}
}

func parseLS(value string, styles *UiStyles, exts *ExtensionMappings) {
	eachPair(value, func(key, val string) {
		s := parseSGRValue(val)
		if styles.setLS(key, s) {
			return
		}
		if strings.HasPrefix(key, "*") {
			exts.add(strings.TrimPrefix(key, "*."), s)
			return
		}
		xlog.Warn("unrecognised LS_COLORS key %q", key)
	})
}

// isResetDefinition reports whether an EXA_COLORS value opts out of the
// default filetype classifier, checked on the raw string before iterating
// pairs since a bare "reset" token (no "=value") never survives eachPair's
// split and would otherwise go unnoticed.
func isResetDefinition(value string) bool {
	return value == "reset" || strings.HasPrefix(value, "reset:")
}

// parseEXA applies an EXA_COLORS definition's key=value pairs on top of
// styles/exts.
func parseEXA(value string, styles *UiStyles, exts *ExtensionMappings) {
	eachPair(value, func(key, val string) {
		s := parseSGRValue(val)
		if styles.setLS(key, s) {
			return
		}
		if styles.setEXA(key, s) {
			return
		}
		if strings.HasPrefix(key, "*") {
			exts.add(strings.TrimPrefix(key, "*."), s)
			return
		}
		exts.add(key, s)
	})
}
