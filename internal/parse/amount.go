package parse

import (
	"math"
	"strconv"
	"strings"
)

var amountReplacer = strings.NewReplacer(
	"$", "",
	",", "",
	" ", "",
	"\t", "",
	"USD", "",
	"usd", "",
)

// ParseAmount converts raw token text into a non-negative finite number.
// Currency symbols, thousands separators and whitespace are stripped before
// parsing. It is total: non-numeric or empty input yields 0, never an error,
// and "0" parses to an explicit zero rather than being treated as absent.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	// Accounting notation wraps negatives in parentheses.
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = amountReplacer.Replace(s)
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// NormalizeIdentifier trims surrounding whitespace and nothing else. Tax
// identifiers are compared verbatim, so case and internal spacing are kept.
func NormalizeIdentifier(raw string) string {
	return strings.TrimSpace(raw)
}

// LooksNumeric reports whether a raw value parses as a number once currency
// formatting is stripped. Used by the generic pass-through profile to decide
// between amount and text coercion.
func LooksNumeric(raw string) bool {
	s := amountReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
