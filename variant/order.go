package variant

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/anisan-cli/dvs/source"
	"golang.org/x/exp/slices"
)

// leadingNumber parses the numeric prefix of k the way a lenient integer
// parse does: optional leading whitespace, optional sign, then decimal digits,
// or hex digits after a 0x prefix. Values too large for an int64 keep their
// magnitude as a float.
func leadingNumber(k source.Key) (float64, bool) {
	s := strings.TrimLeftFunc(string(k), unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits := prefixLen(s[2:], isHexDigit)
		if digits == 0 {
			return 0, false
		}
		return parseFloat(sign + s[:2+digits] + "p0")
	}

	digits := prefixLen(s, isDigit)
	if digits == 0 {
		return 0, false
	}
	return parseFloat(sign + s[:digits])
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func prefixLen(s string, accept func(byte) bool) int {
	n := 0
	for n < len(s) && accept(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Compare orders keys for the variant menu: keys without a numeric value come
// first, numeric keys follow in descending order. Two non-numeric keys, or two
// equal numbers, compare equal so a stable sort keeps their set order.
func Compare(a, b source.Key) int {
	na, aok := leadingNumber(a)
	nb, bok := leadingNumber(b)

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case na > nb:
		return -1
	case na < nb:
		return 1
	default:
		return 0
	}
}

// Ordered returns the set keys sorted with Compare.
func Ordered(set *Set) []source.Key {
	keys := set.Keys()
	slices.SortStableFunc(keys, Compare)
	return keys
}
