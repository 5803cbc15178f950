package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber converts a Danish- or English-formatted numeric string to a
// float. Danish uses periods as thousands separators and the comma as the
// decimal separator: "72.000" → 72000, "1.234,56" → 1234.56.
//
// Currency characters (kr, €, $) and whitespace are stripped first. The
// second return value is false when the cell holds no number; conversion
// never fails loudly.
//
// Known limitation: a lone period with fewer than 3 trailing digits is kept
// as a decimal point, so "1.5" stays 1.5 even where 1500 was meant.
func ParseNumber(value string) (float64, bool) {
	cleaned := stripCurrency(value)
	if !hasDigit(cleaned) {
		return 0, false
	}

	if strings.Contains(cleaned, ",") {
		// Comma is the decimal separator; periods are thousands separators.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		switch strings.Count(cleaned, ".") {
		case 0:
			// Plain integer or already normalized.
		case 1:
			intPart, fracPart, _ := strings.Cut(cleaned, ".")
			if len(fracPart) == 3 && len(intPart) <= 3 {
				cleaned = intPart + fracPart
			}
		default:
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// stripCurrency removes the characters of "kr" in any case, currency signs
// and all whitespace, wherever they occur.
func stripCurrency(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r == 'k' || r == 'K' || r == 'r' || r == 'R':
		case r == '€' || r == '$':
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
