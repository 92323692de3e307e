package options

// Flag identifies a recognised command-line switch, either by its single
// ASCII letter short form or its long form.
type Flag struct {
	Short byte // 0 if this flag has no short form
	Long  string
}

func ShortFlag(b byte) Flag    { return Flag{Short: b} }
func LongFlag(s string) Flag   { return Flag{Long: s} }
func Both(b byte, l string) Flag { return Flag{Short: b, Long: l} }

func (f Flag) String() string {
	if f.Long != "" {
		return "--" + f.Long
	}
	return "-" + string(f.Short)
}

// TakesValue says whether an Arg needs a value and, if so, what the
// allowed values are (nil means "any string").
type TakesValue struct {
	Necessary bool
	Values    []string // allowed values, nil = unconstrained
}

var Forbidden = TakesValue{Necessary: false}

func Necessary(values ...string) TakesValue {
	return TakesValue{Necessary: true, Values: values}
}

// Arg is one declared option: its flag forms and whether it takes a value.
type Arg struct {
	Flag       Flag
	TakesValue TakesValue
}

// Args is the full declared option table, consulted by Parse.
type Args []Arg

func (args Args) findShort(b byte) (Arg, bool) {
	for _, a := range args {
		if a.Flag.Short == b {
			return a, true
		}
	}
	return Arg{}, false
}

func (args Args) findLong(s string) (Arg, bool) {
	for _, a := range args {
		if a.Flag.Long == s {
			return a, true
		}
	}
	return Arg{}, false
}
