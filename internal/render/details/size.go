package details

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/style"
	"github.com/dylanreedx/exa-go/internal/theme"
)

// SizeFormat selects how a byte count is rendered, mirroring --binary vs
// --bytes vs the decimal-prefix default.
type SizeFormat int

const (
	SizeDecimalBytes SizeFormat = iota // 1.0M (base 1000)
	SizeBinaryBytes                    // 1.0Mi (base 1024)
	SizeJustBytes                      // 1,048,576 (locale thousands separator)
)

var decimalPrefixes = []string{"", "k", "M", "G", "T", "P"}
var binaryPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi"}

// RenderSize turns a fields.Size into a (number, unit) pair of TextCells,
// ported from `original_source/src/output/render/size.rs`: device-ID pairs
// render as "major,minor"; everything else is either a locale-grouped raw
// byte count or a one-decimal-digit, unit-suffixed number scaled by 1000
// or 1024, matching the original's number_prefix-crate behaviour exactly
// (values under 10 in the scaled unit keep one decimal place).
func RenderSize(sz fields.Size, format SizeFormat, e *env.Environment, st theme.SizeScale, punctuation theme.UiStyles) (number, unit cell.TextCell) {
	if sz.IsNone() {
		return cell.Plain(""), cell.Plain("")
	}
	if sz.IsDeviceIDs() {
		d := sz.DeviceIDsValue()
		n := cell.NewCell(st.Byte, strconv.Itoa(int(d.Major)))
		n = n.Append(cell.Plain(",")).Append(cell.NewCell(st.Byte, strconv.Itoa(int(d.Minor))))
		return n, cell.Plain("")
	}

	bytes, _ := sz.Bytes()

	if format == SizeJustBytes {
		text := e.ThousandsSeparated(bytes)
		return cell.NewCell(scaleStyle(st, bytes), text), cell.Plain("")
	}

	prefixes := decimalPrefixes
	base := float64(1000)
	if format == SizeBinaryBytes {
		prefixes = binaryPrefixes
		base = 1024
	}

	value := float64(bytes)
	step := 0
	for value >= base && step < len(prefixes)-1 {
		value /= base
		step++
	}

	var text string
	if step == 0 {
		text = humanize.Comma(int64(bytes))
	} else if value < 10 {
		text = fmt.Sprintf("%.1f", value)
	} else {
		text = strconv.Itoa(int(value + 0.5))
	}

	s := scaleStyleForStep(st, step)
	return cell.NewCell(s, text), cell.NewCell(s, prefixes[step])
}

// scaleStyle picks the magnitude-scale style bucket a raw byte count falls
// into, for the five-step SizeScale.
func scaleStyle(st theme.SizeScale, bytes uint64) style.Style {
	switch {
	case bytes < 1_000:
		return st.Byte
	case bytes < 1_000_000:
		return st.Kilo
	case bytes < 1_000_000_000:
		return st.Mega
	case bytes < 1_000_000_000_000:
		return st.Giga
	default:
		return st.Huge
	}
}

func scaleStyleForStep(st theme.SizeScale, step int) style.Style {
	switch step {
	case 0:
		return st.Byte
	case 1:
		return st.Kilo
	case 2:
		return st.Mega
	case 3:
		return st.Giga
	default:
		return st.Huge
	}
}
