package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dylanreedx/exa-go/internal/filter"
	"github.com/dylanreedx/exa-go/internal/theme"
)

// ViewMode selects which renderer the view dispatcher uses.
type ViewMode int

const (
	ViewLines ViewMode = iota
	ViewGrid
	ViewGridDetails
	ViewDetails
)

// DirAction selects how the view dispatcher treats a directory argument.
type DirAction int

const (
	DirList DirAction = iota
	DirListAsFile
	DirRecurse
	DirTree
)

// TimeField selects which timestamp --time shows in long mode.
type TimeField int

const (
	TimeModified TimeField = iota
	TimeChanged
	TimeAccessed
	TimeCreated
)

// TimeStyle selects the timestamp format in long mode.
type TimeStyle int

const (
	TimeStyleDefault TimeStyle = iota
	TimeStyleISO
	TimeStyleLongISO
	TimeStyleFullISO
)

// Config is the fully-resolved, typed configuration option deduction
// produces from Matches plus environment/terminal-width inputs.
type Config struct {
	Help, Version bool

	View      ViewMode
	DirAction DirAction
	Level     int // 0 = unlimited

	Across     bool
	Classify   bool
	ShowIcons  bool

	Theme theme.Options

	Filter filter.Options

	Long          bool
	Binary        bool
	RawBytes      bool
	ShowGroup     bool
	Numeric       bool
	Header        bool
	ShowInode     bool
	ShowLinks     bool
	ShowBlocks    bool
	TimeField     TimeField
	TimeStyle     TimeStyle
	ShowGit       bool
	ShowExtended  bool
	OctalPerms    bool

	NoPermissions bool
	NoFilesize    bool
	NoUser        bool
	NoTime        bool

	TerminalWidth int // 0 = unknown
	GridRowsThreshold int
}

// MisfireKind distinguishes the flavors of options-stage error from
// parse-stage ParseError, per `original_source/src/options/misfire.rs`.
type MisfireKind int

const (
	MisfireConflict MisfireKind = iota
	MisfireUseless
	MisfireBadArgument
	MisfireTreeAllAll
)

type Misfire struct {
	Kind    MisfireKind
	Message string
}

func (m *Misfire) Error() string { return m.Message }

// Env is the subset of process environment/terminal state option
// deduction needs, gathered by the caller so this package stays testable
// without touching os.Getenv directly.
type Env struct {
	Columns          (*int)
	TerminalWidth    (*int)
	NoColor          bool
	LSColors         string
	EXAColors        string
	GridRowsThreshold int
}

// Deduce implements §4.11: combine matched flags, environment, and
// terminal width into a Config.
func Deduce(m Matches, strictness Strictness, env Env) (Config, error) {
	var cfg Config

	if m.Has(FlagHelp) {
		cfg.Help = true
		return cfg, nil
	}
	if m.Has(FlagVersion) {
		cfg.Version = true
		return cfg, nil
	}

	long := m.Has(FlagLong)
	cfg.Long = long
	grid := m.Has(FlagGrid)
	across := m.Has(FlagAcross)
	oneline := m.Has(FlagOneline)
	recurse := m.Has(FlagRecurse)
	tree := m.Has(FlagTree)
	listDirs := m.Has(FlagListDirs)

	if across && long && !grid {
		return cfg, &Misfire{Kind: MisfireConflict, Message: "--long --across needs --grid"}
	}
	if oneline && across {
		return cfg, &Misfire{Kind: MisfireConflict, Message: "--oneline and --across conflict"}
	}
	if m.Has(FlagBinary) && m.Has(FlagBytes) {
		return cfg, &Misfire{Kind: MisfireConflict, Message: "--binary and --bytes conflict"}
	}
	if recurse && listDirs {
		return cfg, &Misfire{Kind: MisfireConflict, Message: "--recurse and --list-dirs conflict"}
	}
	if tree && listDirs {
		return cfg, &Misfire{Kind: MisfireConflict, Message: "--tree and --list-dirs conflict"}
	}

	longOnlyFlags := []Flag{
		FlagBinary, FlagBytes, FlagHeader, FlagGroup, FlagInode, FlagLinks,
		FlagBlocks, FlagModified, FlagAccessed, FlagCreated, FlagTime,
		FlagTimeStyle, FlagGit, FlagExtended,
	}
	if !long {
		for _, f := range longOnlyFlags {
			if m.Has(f) {
				if strictness == ComplainAboutRedundantArguments {
					return cfg, &Misfire{Kind: MisfireUseless, Message: fmt.Sprintf("%s is useless without --long", f)}
				}
				// UseLast: silently ignored below by never reading these
				// flags' values when !long.
			}
		}
	}

	cfg.Across = across
	cfg.Classify = m.Has(FlagClassify)

	switch {
	case listDirs:
		cfg.DirAction = DirListAsFile
	case tree:
		cfg.DirAction = DirTree
	case recurse:
		cfg.DirAction = DirRecurse
	default:
		cfg.DirAction = DirList
	}

	if lvl, has, err := m.Get(FlagLevel); err != nil {
		return cfg, err
	} else if has {
		n, convErr := strconv.Atoi(lvl)
		if convErr != nil || n < 0 {
			return cfg, &Misfire{Kind: MisfireBadArgument, Message: fmt.Sprintf("--level value %q is not a non-negative integer", lvl)}
		}
		cfg.Level = n
	}

	if err := deduceFilter(m, &cfg); err != nil {
		return cfg, err
	}

	if err := deduceLongMode(m, long, &cfg); err != nil {
		return cfg, err
	}

	cfg.NoPermissions = m.Has(FlagNoPermissions)
	cfg.NoFilesize = m.Has(FlagNoFilesize)
	cfg.NoUser = m.Has(FlagNoUser)
	cfg.NoTime = m.Has(FlagNoTime)

	cfg.ShowIcons = m.Has(FlagIcons) && !m.Has(FlagNoIcons)
	cfg.OctalPerms = m.Has(FlagOctalPermissions)

	if err := deduceTheme(m, env, &cfg); err != nil {
		return cfg, err
	}

	width := 0
	if env.Columns != nil {
		width = *env.Columns
	} else if env.TerminalWidth != nil {
		width = *env.TerminalWidth
	}
	cfg.TerminalWidth = width
	cfg.GridRowsThreshold = env.GridRowsThreshold

	switch {
	case oneline:
		cfg.View = ViewLines
	case long:
		if grid {
			cfg.View = ViewGridDetails
		} else {
			cfg.View = ViewDetails
		}
	case width > 0:
		cfg.View = ViewGrid
	default:
		cfg.View = ViewLines
	}

	return cfg, nil
}

func deduceFilter(m Matches, cfg *Config) error {
	all := m.Count(FlagAll)
	switch {
	case all >= 2:
		cfg.Filter.DotFilter = filter.DotFilterDotfilesAndDotDot
	case all == 1:
		cfg.Filter.DotFilter = filter.DotFilterDotfiles
	default:
		cfg.Filter.DotFilter = filter.DotFilterJustFiles
	}

	cfg.Filter.Reverse = m.Has(FlagReverse)
	cfg.Filter.ListDirsFirst = m.Has(FlagDirsFirst)
	cfg.Filter.OnlyDirs = m.Has(FlagOnlyDirs)
	cfg.Filter.UseGitIgnore = m.Has(FlagGitIgnore)

	if sortVal, has, err := m.Get(FlagSort); err != nil {
		return err
	} else if has {
		field, caseSensitivity, err := parseSortField(sortVal)
		if err != nil {
			return err
		}
		cfg.Filter.SortField = field
		cfg.Filter.SortCase = caseSensitivity
	} else {
		cfg.Filter.SortField = filter.SortName
	}

	if globs, has, err := m.Get(FlagIgnoreGlob); err != nil {
		return err
	} else if has {
		cfg.Filter.IgnorePatterns = strings.Split(globs, "|")
	}

	return nil
}

func parseSortField(val string) (filter.SortField, filter.SortCase, error) {
	switch val {
	case "name":
		return filter.SortName, filter.SortCaseInsensitive, nil
	case "Name":
		return filter.SortName, filter.SortCaseSensitive, nil
	case "size":
		return filter.SortSize, filter.SortCaseInsensitive, nil
	case "extension":
		return filter.SortExtension, filter.SortCaseInsensitive, nil
	case "Extension":
		return filter.SortExtension, filter.SortCaseSensitive, nil
	case "modified", "date", "time", "old", "new":
		return filter.SortModifiedDate, filter.SortCaseInsensitive, nil
	case "accessed":
		return filter.SortAccessedDate, filter.SortCaseInsensitive, nil
	case "created":
		return filter.SortCreatedDate, filter.SortCaseInsensitive, nil
	case "inode":
		return filter.SortFileInode, filter.SortCaseInsensitive, nil
	case "type":
		return filter.SortFileType, filter.SortCaseInsensitive, nil
	case "none":
		return filter.SortUnsorted, filter.SortCaseInsensitive, nil
	default:
		return 0, 0, &Misfire{Kind: MisfireBadArgument, Message: fmt.Sprintf("unrecognised --sort value %q", val)}
	}
}

func deduceLongMode(m Matches, long bool, cfg *Config) error {
	if !long {
		return nil
	}

	cfg.Binary = m.Has(FlagBinary)
	cfg.RawBytes = m.Has(FlagBytes)
	cfg.ShowGroup = m.Has(FlagGroup)
	cfg.Numeric = m.Has(FlagNumeric)
	cfg.Header = m.Has(FlagHeader)
	cfg.ShowInode = m.Has(FlagInode)
	cfg.ShowLinks = m.Has(FlagLinks)
	cfg.ShowBlocks = m.Has(FlagBlocks)
	cfg.ShowGit = m.Has(FlagGit)
	cfg.ShowExtended = m.Has(FlagExtended)

	switch {
	case m.Has(FlagCreated):
		cfg.TimeField = TimeCreated
	case m.Has(FlagAccessed):
		cfg.TimeField = TimeAccessed
	case m.Has(FlagChanged):
		cfg.TimeField = TimeChanged
	case m.Has(FlagModified):
		cfg.TimeField = TimeModified
	}

	if tval, has, err := m.Get(FlagTime); err != nil {
		return err
	} else if has {
		switch tval {
		case "modified":
			cfg.TimeField = TimeModified
		case "changed":
			cfg.TimeField = TimeChanged
		case "accessed":
			cfg.TimeField = TimeAccessed
		case "created":
			cfg.TimeField = TimeCreated
		default:
			return &Misfire{Kind: MisfireBadArgument, Message: fmt.Sprintf("unrecognised --time value %q", tval)}
		}
	}

	if sval, has, err := m.Get(FlagTimeStyle); err != nil {
		return err
	} else if has {
		switch sval {
		case "default":
			cfg.TimeStyle = TimeStyleDefault
		case "iso":
			cfg.TimeStyle = TimeStyleISO
		case "long-iso":
			cfg.TimeStyle = TimeStyleLongISO
		case "full-iso":
			cfg.TimeStyle = TimeStyleFullISO
		default:
			return &Misfire{Kind: MisfireBadArgument, Message: fmt.Sprintf("unrecognised --time-style value %q", sval)}
		}
	}

	return nil
}

func deduceTheme(m Matches, env Env, cfg *Config) error {
	cfg.Theme.Definitions = theme.Definitions{LS: env.LSColors, EXA: env.EXAColors}

	cfg.Theme.UseColours = theme.ColoursAutomatic
	if env.NoColor {
		cfg.Theme.UseColours = theme.ColoursNever
	}

	if val, has, err := m.Get(FlagColor); err != nil {
		return err
	} else if has {
		uc, ucErr := parseUseColours(val)
		if ucErr != nil {
			return ucErr
		}
		cfg.Theme.UseColours = uc
	} else if val, has, err := m.Get(FlagColour); err != nil {
		return err
	} else if has {
		uc, ucErr := parseUseColours(val)
		if ucErr != nil {
			return ucErr
		}
		cfg.Theme.UseColours = uc
	}

	cfg.Theme.ColourScale = theme.ScaleFixed
	if m.Has(FlagColorScale) || m.Has(FlagColourScale) {
		cfg.Theme.ColourScale = theme.ScaleGradient
	}
	return nil
}

// parseUseColours accepts "auto"/"automatic" as the Open-Question
// resolution recorded in DESIGN.md: both spellings mean Automatic. Any
// other value is an options error listing the recognised choices, per
// the declared --color Necessary() table in table.go.
func parseUseColours(val string) (theme.UseColours, error) {
	switch val {
	case "always":
		return theme.ColoursAlways, nil
	case "never":
		return theme.ColoursNever, nil
	case "auto", "automatic":
		return theme.ColoursAutomatic, nil
	default:
		return 0, &Misfire{Kind: MisfireBadArgument, Message: fmt.Sprintf(
			"unrecognised --color value %q (choices: always, auto, automatic, never)", val)}
	}
}
