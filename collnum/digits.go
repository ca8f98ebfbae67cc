package collnum

import "strings"

// sentinelRun stands in for the digit run of a number containing no digit
// characters at all ("★", "", "promo"). Such numbers sort as if they carried
// the value 100000, which places them after ordinary numbering but not after
// genuine six-digit numbers. Inherited from the reference data pipeline;
// changing it would reorder existing catalogs.
const sentinelRun = "100000"

// digitRun extracts the ASCII digits of number, in their original order, and
// reports whether number consists of digits only. A number with no digits
// yields the sentinel run and is never pure.
func digitRun(number string) (run string, pure bool) {
	var b strings.Builder

	for i := 0; i < len(number); i++ {
		if c := number[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	run = b.String()
	if run == "" {
		return sentinelRun, false
	}

	return run, run == number
}

// compareRunValues compares two digit runs by the non-negative integers they
// spell, without parsing them: leading zeros are ignored, then the longer
// remainder is the larger value, and equal-length remainders compare byte by
// byte. Works for digit runs of any length.
func compareRunValues(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

// compareRunLengths orders two digit runs by length, shorter first. Used as a
// tiebreak between runs of equal numeric value but different zero padding, so
// "0" precedes "00".
func compareRunLengths(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
