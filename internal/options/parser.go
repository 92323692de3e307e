package options

import "strings"

// Strictness controls what happens when the same flag (or one of its
// aliases) is given more than once, per `original_source/src/options/parser.rs`.
type Strictness int

const (
	UseLastArguments Strictness = iota
	ComplainAboutRedundantArguments
)

// MatchedFlag is one occurrence of a recognised flag in argv, with its
// value if it took one.
type MatchedFlag struct {
	Flag  Flag
	Value string
	HasValue bool
}

// Matches is the parsed result: every matched flag occurrence (in argv
// order) plus the leftover positional arguments (everything after a bare
// `--`, and anything that isn't itself a flag).
type Matches struct {
	Frozen     []MatchedFlag
	Positional []string
	strictness Strictness
}

// Parse walks inputs left to right against the declared args table,
// exactly mirroring `Args::parse`:
//   - a bare "--" freezes the rest of argv as positional arguments
//   - "--foo=val" / "--foo val" for long options (ForbiddenValue rejects
//     the "=val" form, NeedsValue requires one of the two forms)
//   - "-x=val" and "-xvalue" / "-x value" for a single short option
//   - "-abc" clusters multiple value-less short options together, with
//     the first value-taking short in the cluster consuming the rest of
//     the string (or the next argv entry) as its value
//   - everything else is positional
func Parse(inputs []string, table Args, strictness Strictness) (Matches, error) {
	m := Matches{strictness: strictness}

	i := 0
	frozen := false
	for i < len(inputs) {
		in := inputs[i]

		if frozen {
			m.Positional = append(m.Positional, in)
			i++
			continue
		}

		switch {
		case in == "--":
			frozen = true
			i++

		case strings.HasPrefix(in, "--"):
			body := in[2:]
			key, val, hasEq := splitOnEquals(body)
			arg, ok := table.findLong(key)
			if !ok {
				return m, &ParseError{Kind: ErrUnknownLong, Arg: key}
			}
			if arg.TakesValue.Necessary {
				if hasEq {
					m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag, Value: val, HasValue: true})
					i++
				} else if i+1 < len(inputs) {
					m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag, Value: inputs[i+1], HasValue: true})
					i += 2
				} else {
					return m, &ParseError{Kind: ErrNeedsValue, Flag: arg.Flag}
				}
			} else {
				if hasEq {
					return m, &ParseError{Kind: ErrForbiddenValue, Flag: arg.Flag}
				}
				m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag})
				i++
			}

		case strings.HasPrefix(in, "-") && len(in) > 1:
			cluster := in[1:]
			key, val, hasEq := splitOnEquals(cluster)
			if hasEq && len(key) == 1 {
				arg, ok := table.findShort(key[0])
				if !ok {
					return m, &ParseError{Kind: ErrUnknownShort, Arg: key}
				}
				if !arg.TakesValue.Necessary {
					return m, &ParseError{Kind: ErrForbiddenValue, Flag: arg.Flag}
				}
				m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag, Value: val, HasValue: true})
				i++
				continue
			}

			consumed, err := parseShortCluster(cluster, inputs, i, table, &m)
			if err != nil {
				return m, err
			}
			i += consumed

		default:
			m.Positional = append(m.Positional, in)
			i++
		}
	}

	return m, nil
}

// parseShortCluster walks a "-abcdef"-style cluster: each byte is looked
// up as a short flag; the first one that takes a value consumes the rest
// of the cluster string (if non-empty) or the next argv entry as its
// value, and ends the cluster.
func parseShortCluster(cluster string, inputs []string, at int, table Args, m *Matches) (int, error) {
	for j := 0; j < len(cluster); j++ {
		b := cluster[j]
		arg, ok := table.findShort(b)
		if !ok {
			return 0, &ParseError{Kind: ErrUnknownShort, Arg: string(b)}
		}

		if !arg.TakesValue.Necessary {
			m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag})
			continue
		}

		rest := cluster[j+1:]
		if rest != "" {
			m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag, Value: rest, HasValue: true})
			return 1, nil
		}
		if at+1 < len(inputs) {
			m.Frozen = append(m.Frozen, MatchedFlag{Flag: arg.Flag, Value: inputs[at+1], HasValue: true})
			return 2, nil
		}
		return 0, &ParseError{Kind: ErrNeedsValue, Flag: arg.Flag}
	}
	return 1, nil
}

// splitOnEquals splits "key=value" into its halves, requiring a non-empty
// key and at least one character after the "=", matching the original's
// `split_on_equals` helper.
func splitOnEquals(s string) (key, val string, ok bool) {
	idx := strings.IndexByte(s, '=')
	if idx <= 0 || idx == len(s)-1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// Has reports whether flag was matched at all.
func (m Matches) Has(f Flag) bool {
	for _, mf := range m.Frozen {
		if mf.Flag == f {
			return true
		}
	}
	return false
}

// Count returns how many times flag was matched, regardless of strictness.
func (m Matches) Count(f Flag) int {
	n := 0
	for _, mf := range m.Frozen {
		if mf.Flag == f {
			n++
		}
	}
	return n
}

// Get returns flag's value, honouring the parser's Strictness: UseLast
// returns the rightmost occurrence; Complain returns an error if the flag
// was given more than once.
func (m Matches) Get(f Flag) (string, bool, error) {
	return m.GetWhere(func(mf Flag) bool { return mf == f })
}

// GetWhere is Get generalised to match any of a set of aliased flags —
// the same flag specified under two different names still counts as a
// duplicate under Complain.
func (m Matches) GetWhere(match func(Flag) bool) (string, bool, error) {
	var found []MatchedFlag
	for _, mf := range m.Frozen {
		if match(mf.Flag) {
			found = append(found, mf)
		}
	}
	if len(found) == 0 {
		return "", false, nil
	}
	if m.strictness == ComplainAboutRedundantArguments && len(found) > 1 {
		return "", false, &ParseError{Kind: ErrDuplicate, Flag: found[len(found)-1].Flag}
	}
	last := found[len(found)-1]
	return last.Value, last.HasValue, nil
}
