// Command exa lists files and directories with colours and a choice of
// grid, one-per-line, long, and tree views — the Go shape of
// `original_source/src/main.rs`'s entry point.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dylanreedx/exa-go/internal/adapters/termwidth"
	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/options"
	"github.com/dylanreedx/exa-go/internal/theme"
	"github.com/dylanreedx/exa-go/internal/view"
)

const versionString = "exa-go 1.0.0 (compatible with exa's CLI surface)"

const helpText = `Usage:
  exa [options] [files...]

META OPTIONS
  -?, --help         show this help text
  -v, --version      show version of exa

DISPLAY OPTIONS
  -1, --oneline      display one entry per line
  -l, --long         display extended details and attributes
  -G, --grid         display entries as a grid
  -x, --across       sort entries across instead of downwards
  -R, --recurse      recurse into directories
  -T, --tree         recurse into directories as a tree
  -F, --classify     display type indicator by file names
      --colo(u)r     when to use terminal colours (always, auto, never)
      --colo(u)r-scale  highlight levels of file sizes distinctly

FILTERING OPTIONS
  -a, --all          show hidden and 'dot' files
  -d, --list-dirs    list directories like regular files
  -L, --level DEPTH  limit depth of recursion
  -r, --reverse      reverse the sort order
  -s, --sort SORT    which field to sort by
      --group-directories-first  list directories before other files
  -D, --only-dirs    list only directories
  -I, --ignore-glob GLOB  ignore files matching this glob pattern
      --git-ignore   ignore files mentioned in .gitignore

LONG VIEW OPTIONS
  -b, --binary       list file sizes with binary prefixes
  -B, --bytes        list file sizes in bytes, without prefixes
  -g, --group        list each file's group
  -n, --numeric      accepted; user and group are still shown by name
  -h, --header       add a header row to each column
      --icons        display icons
  -i, --inode        list each file's inode number
  -H, --links        list each file's number of hard links
  -m, --modified     use the modified timestamp
      --changed      use the changed timestamp
  -S, --blocks       list each file's number of file system blocks
  -t, --time FIELD   which timestamp to show
  -u, --accessed     use the accessed timestamp
  -U, --created      use the created timestamp
      --time-style   how to format timestamps
      --no-permissions  suppress the permissions column
      --no-filesize  suppress the file size column
      --no-user      suppress the user column
      --no-time      suppress the time column
      --git          list each file's git status
  -@, --extended     accepted; attributes are not listed (an '@' after the
                     permissions marks any file that has them, flag or not)
      --octal-permissions  list each file's permissions in octal
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	matches, err := options.Parse(argv, options.Table(), options.UseLastArguments)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return view.ExitOptionsError
	}

	envInputs := options.Env{
		NoColor:           os.Getenv("NO_COLOR") != "",
		LSColors:          os.Getenv("LS_COLORS"),
		EXAColors:         os.Getenv("EXA_COLORS"),
		GridRowsThreshold: defaultGridRowsThreshold,
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, convErr := strconv.Atoi(cols); convErr == nil && n > 0 {
			envInputs.Columns = &n
		}
	}
	if rows := os.Getenv("EXA_GRID_ROWS"); rows != "" {
		if n, convErr := strconv.Atoi(rows); convErr == nil && n >= 0 {
			envInputs.GridRowsThreshold = n
		}
	}
	if w, ok := termwidth.Query(); ok {
		envInputs.TerminalWidth = &w
	}

	cfg, err := options.Deduce(matches, options.UseLastArguments, envInputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return view.ExitOptionsError
	}

	if cfg.Help {
		fmt.Print(helpText)
		return view.ExitOK
	}
	if cfg.Version {
		fmt.Println(versionString)
		return view.ExitOK
	}

	stdoutIsTTY := termwidth.IsTTY(os.Stdout.Fd())
	th := theme.Build(cfg.Theme, stdoutIsTTY)
	e := env.New()

	gitRoot, err := os.Getwd()
	if err != nil {
		gitRoot = "."
	}

	d := view.New(cfg, th, e, os.Stdout, gitRoot)
	return d.Run(matches.Positional)
}

// defaultGridRowsThreshold matches exa's own "a grid under a handful of
// rows isn't worth it" cutoff for --long --grid.
const defaultGridRowsThreshold = 3
