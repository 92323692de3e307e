package theme

import "strings"

// eachPair splits an LS_COLORS/EXA_COLORS value into its colon-separated
// key=value pairs, skipping anything that doesn't split cleanly into two
// non-empty halves — ported from lsc.rs's `LSColors::each_pair`.
func eachPair(value string, each func(key, val string)) {
	for _, entry := range strings.Split(value, ":") {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) < 2 {
			continue
		}
		key, val := parts[0], parts[1]
		if key == "" || val == "" {
			continue
		}
		each(key, val)
	}
}
