package theme

import (
	"math"
	"strings"
	"unicode"
)

// Contrast names the icon variant that stays readable on a background.
type Contrast string

const (
	ContrastDark  Contrast = "dark"
	ContrastLight Contrast = "light"

	// lumaThreshold splits the 0-255 luma range between the two variants.
	lumaThreshold = 128
)

// ContrastFromHex classifies a "#rrggbb" background color. Lengths and
// channel positions count characters, not bytes; inputs shorter than seven
// characters are treated as light. Channels are read with prefix semantics,
// so trailing garbage in a pair is ignored and a pair without any hex digit
// poisons the luma and yields light.
func ContrastFromHex(hex string) Contrast {
	chars := []rune(hex)
	if len(chars) < 7 {
		return ContrastLight
	}
	digits := chars[1:]
	r := parseHexPrefix(string(digits[0:2]))
	g := parseHexPrefix(string(digits[2:4]))
	b := parseHexPrefix(string(digits[4:6]))
	if Luma(r, g, b) > lumaThreshold {
		return ContrastDark
	}
	return ContrastLight
}

// Luma returns the Rec. 709 weighted brightness of 0-255 channels.
// The conversions keep each product rounded so results do not depend on
// fused multiply-add support.
func Luma(r, g, b float64) float64 {
	return float64(0.2126*r) + float64(0.7152*g) + float64(0.0722*b)
}

// parseHexPrefix reads a base-16 integer from the start of s, accepting
// leading whitespace, a sign and a 0x prefix. It returns NaN when no digit
// is found.
func parseHexPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	value := 0.0
	read := 0
	for ; read < len(s); read++ {
		d, ok := hexDigit(s[read])
		if !ok {
			break
		}
		value = value*16 + float64(d)
	}
	if read == 0 {
		return math.NaN()
	}
	return sign * value
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
