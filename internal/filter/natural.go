package filter

// NaturalCompare orders strings the way a person reading file names would:
// runs of digits compare by numeric value, everything else compares
// byte-by-byte. "file2" < "file10" < "file_a", matching natord's
// behaviour upstream.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			ai, aEnd := i, i
			for aEnd < len(a) && isDigit(a[aEnd]) {
				aEnd++
			}
			bi, bEnd := j, j
			for bEnd < len(b) && isDigit(b[bEnd]) {
				bEnd++
			}

			if c := compareNumeric(a[ai:aEnd], b[bi:bEnd]); c != 0 {
				return c
			}
			i, j = aEnd, bEnd
			continue
		}

		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// compareNumeric compares two digit runs by value first (stripping leading
// zeroes), falling back to the longer/lexically-greater run when the
// numeric values tie (so "007" sorts after "07" after "7").
func compareNumeric(a, b string) int {
	at := trimLeadingZeroes(a)
	bt := trimLeadingZeroes(b)

	if len(at) != len(bt) {
		if len(at) < len(bt) {
			return -1
		}
		return 1
	}
	if at != bt {
		if at < bt {
			return -1
		}
		return 1
	}
	// equal numeric value: fewer leading zeroes (i.e. the original,
	// untrimmed run) sorts first
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}

func trimLeadingZeroes(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
