package options

// Declared flags, ported from spec.md §6's CLI surface table one-for-one.
var (
	FlagOneline   = Both('1', "oneline")
	FlagLong      = Both('l', "long")
	FlagGrid      = Both('G', "grid")
	FlagAcross    = Both('x', "across")
	FlagRecurse   = Both('R', "recurse")
	FlagTree      = Both('T', "tree")
	FlagClassify  = Both('F', "classify")
	FlagColor     = LongFlag("color")
	FlagColour    = LongFlag("colour")
	FlagColorScale  = LongFlag("color-scale")
	FlagColourScale = LongFlag("colour-scale")

	FlagAll           = Both('a', "all")
	FlagListDirs      = Both('d', "list-dirs")
	FlagLevel         = Both('L', "level")
	FlagReverse       = Both('r', "reverse")
	FlagSort          = Both('s', "sort")
	FlagDirsFirst     = LongFlag("group-directories-first")
	FlagOnlyDirs      = Both('D', "only-dirs")
	FlagIgnoreGlob    = Both('I', "ignore-glob")
	FlagGitIgnore     = LongFlag("git-ignore")

	FlagBinary   = Both('b', "binary")
	FlagBytes    = Both('B', "bytes")
	FlagGroup    = Both('g', "group")
	FlagNumeric  = Both('n', "numeric")
	FlagHeader   = Both('h', "header")
	FlagIcons    = LongFlag("icons")
	FlagInode    = Both('i', "inode")
	FlagLinks    = Both('H', "links")
	FlagModified = Both('m', "modified")
	FlagChanged  = LongFlag("changed")
	FlagBlocks   = Both('S', "blocks")
	FlagTime     = Both('t', "time")
	FlagAccessed = Both('u', "accessed")
	FlagCreated  = Both('U', "created")
	FlagTimeStyle = LongFlag("time-style")

	FlagNoPermissions = LongFlag("no-permissions")
	FlagNoFilesize    = LongFlag("no-filesize")
	FlagNoUser        = LongFlag("no-user")
	FlagNoTime        = LongFlag("no-time")
	FlagNoIcons       = LongFlag("no-icons")

	FlagGit     = LongFlag("git")
	FlagExtended = Both('@', "extended")
	FlagOctalPermissions = LongFlag("octal-permissions")

	FlagHelp    = Both('?', "help")
	FlagVersion = Both('v', "version")
)

// Table is the full declared option set handed to Parse.
func Table() Args {
	return Args{
		{Flag: FlagOneline, TakesValue: Forbidden},
		{Flag: FlagLong, TakesValue: Forbidden},
		{Flag: FlagGrid, TakesValue: Forbidden},
		{Flag: FlagAcross, TakesValue: Forbidden},
		{Flag: FlagRecurse, TakesValue: Forbidden},
		{Flag: FlagTree, TakesValue: Forbidden},
		{Flag: FlagClassify, TakesValue: Forbidden},
		{Flag: FlagColor, TakesValue: Necessary("auto", "automatic", "always", "never")},
		{Flag: FlagColour, TakesValue: Necessary("auto", "automatic", "always", "never")},
		{Flag: FlagColorScale, TakesValue: Forbidden},
		{Flag: FlagColourScale, TakesValue: Forbidden},

		{Flag: FlagAll, TakesValue: Forbidden},
		{Flag: FlagListDirs, TakesValue: Forbidden},
		{Flag: FlagLevel, TakesValue: Necessary()},
		{Flag: FlagReverse, TakesValue: Forbidden},
		{Flag: FlagSort, TakesValue: Necessary(
			"name", "Name", "size", "extension", "Extension",
			"modified", "accessed", "created", "inode", "type", "none",
			"date", "time", "old", "new",
		)},
		{Flag: FlagDirsFirst, TakesValue: Forbidden},
		{Flag: FlagOnlyDirs, TakesValue: Forbidden},
		{Flag: FlagIgnoreGlob, TakesValue: Necessary()},
		{Flag: FlagGitIgnore, TakesValue: Forbidden},

		{Flag: FlagBinary, TakesValue: Forbidden},
		{Flag: FlagBytes, TakesValue: Forbidden},
		{Flag: FlagGroup, TakesValue: Forbidden},
		{Flag: FlagNumeric, TakesValue: Forbidden},
		{Flag: FlagHeader, TakesValue: Forbidden},
		{Flag: FlagIcons, TakesValue: Forbidden},
		{Flag: FlagInode, TakesValue: Forbidden},
		{Flag: FlagLinks, TakesValue: Forbidden},
		{Flag: FlagModified, TakesValue: Forbidden},
		{Flag: FlagChanged, TakesValue: Forbidden},
		{Flag: FlagBlocks, TakesValue: Forbidden},
		{Flag: FlagTime, TakesValue: Necessary("modified", "changed", "accessed", "created")},
		{Flag: FlagAccessed, TakesValue: Forbidden},
		{Flag: FlagCreated, TakesValue: Forbidden},
		{Flag: FlagTimeStyle, TakesValue: Necessary("default", "iso", "long-iso", "full-iso")},

		{Flag: FlagNoPermissions, TakesValue: Forbidden},
		{Flag: FlagNoFilesize, TakesValue: Forbidden},
		{Flag: FlagNoUser, TakesValue: Forbidden},
		{Flag: FlagNoTime, TakesValue: Forbidden},
		{Flag: FlagNoIcons, TakesValue: Forbidden},

		{Flag: FlagGit, TakesValue: Forbidden},
		{Flag: FlagExtended, TakesValue: Forbidden},
		{Flag: FlagOctalPermissions, TakesValue: Forbidden},

		{Flag: FlagHelp, TakesValue: Forbidden},
		{Flag: FlagVersion, TakesValue: Forbidden},
	}
}
