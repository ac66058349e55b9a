// Package sheet implements the savings sheet model: line item lists, goal
// projection, and the named registry of saved sheets.
package sheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize cleans free-text numeric entry into a canonical decimal string.
// Only ASCII digits and a single '.' survive, with at most two fractional
// digits (truncated, not rounded). The result may be empty or end in a bare
// '.' while the user is still typing.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	cleaned := b.String()

	parts := strings.Split(cleaned, ".")
	if len(parts) > 2 {
		return parts[0] + "." + parts[1]
	}
	if len(parts) == 2 && len(parts[1]) > 2 {
		return parts[0] + "." + parts[1][:2]
	}
	return cleaned
}

// ParseAmount reads the leading numeric prefix of s the way a lenient
// float parser would. Anything that does not start with a number is zero.
func ParseAmount(s string) decimal.Decimal {
	d, _ := ParseNumber(s)
	return d
}

// ParseNumber is ParseAmount that also reports whether s began with a number,
// so a genuine zero can be told apart from text that is not a number at all.
func ParseNumber(s string) (decimal.Decimal, bool) {
	prefix := numericPrefix(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// numericPrefix returns the longest prefix of s matching
// [+-]?(digits[.digits]|.digits)([eE][+-]?digits)?
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	sign := s[:intStart]
	if sign == "+" {
		sign = ""
	}
	mantissa := strings.TrimSuffix(s[intStart:i], ".")
	if intDigits == 0 {
		mantissa = "0" + mantissa
	}

	exponent := ""
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			exponent = "e" + strings.TrimPrefix(s[i+1:j], "+")
		}
	}
	return sign + mantissa + exponent
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
