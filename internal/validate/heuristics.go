package validate

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

var (
	ssnPattern      = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	einPattern      = regexp.MustCompile(`^\d{2}-\d{7}$`)
	allDigits       = regexp.MustCompile(`^\d+$`)
	stateZipPattern = regexp.MustCompile(`\b[A-Z]{2},?\s+\d{5}(?:-\d{4})?\b`)
	leadingStreetNo = regexp.MustCompile(`^\s*\d+\s+\S`)
	streetWord      = regexp.MustCompile(`(?i)\b(street|st|avenue|ave|road|rd|drive|dr|lane|ln|boulevard|blvd|court|ct|way|circle|cir|place|pl|suite|ste|apt|unit|po box|p\.o\. box)\b`)
)

// boilerplatePhrases are fragments of static form wording. Any candidate
// containing one of them is form instruction text, not filled-in data.
var boilerplatePhrases = []string{
	"see instructions",
	"see the instructions",
	"street address (including",
	"street address, city",
	"city or town",
	"state or province",
	"zip or foreign postal code",
	"apt. no",
	"and telephone",
	"telephone no",
	"omb no",
	"department of the treasury",
	"internal revenue service",
	"irs.gov",
	"for privacy act",
	"paperwork reduction act",
	"keep for your records",
	"instructions for recipient",
	"instructions for employee",
	"copy a", "copy b", "copy c", "copy 1", "copy 2",
	"corrected (if checked)",
	"cat. no",
	"wage and tax statement",
	"this is important tax information",
	"name, street address",
	"payer's name",
	"recipient's name",
	"employer's name",
	"employee's name",
	"identification number",
}

// IsBoilerplate reports whether extracted text is static form wording rather
// than filled-in data. Single-token numeric strings and very short strings
// are also rejected since a bare box number is never a name or address.
func IsBoilerplate(s string) bool {
	t := strings.TrimSpace(s)
	if len(t) < 3 {
		return true
	}
	tokens := strings.Fields(t)
	if len(tokens) == 1 && (allDigits.MatchString(t) || len(t) < 4) {
		return true
	}
	lower := strings.ToLower(t)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// IsAddressShaped reports whether a candidate looks like a filled-in US
// mailing address: a leading street number or a street-type word, plus a
// two-letter state code followed by a 5-digit ZIP (optionally +4), and not
// boilerplate. Newlines in multi-line captures are treated as separators.
func IsAddressShaped(s string) bool {
	flat := strings.Join(strings.Fields(s), " ")
	if IsBoilerplate(flat) {
		return false
	}
	if !leadingStreetNo.MatchString(flat) && !streetWord.MatchString(flat) {
		return false
	}
	return stateZipPattern.MatchString(flat)
}

// IsTaxIdentifier reports whether a string has SSN (XXX-XX-XXXX) or
// EIN (XX-XXXXXXX) shape.
func IsTaxIdentifier(s string) bool {
	t := strings.TrimSpace(s)
	return ssnPattern.MatchString(t) || einPattern.MatchString(t)
}

// Similarity returns edit-distance similarity normalized to [0,1]:
// 1 means identical (ignoring case and surrounding space), 0 means entirely
// different. Used to pick the right record when one file holds several
// instances of the same party role.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	max := len(a)
	if len(b) > max {
		max = len(b)
	}
	if max == 0 {
		return 1
	}
	dist := levenshtein.Distance(a, b, nil)
	return 1 - float64(dist)/float64(max)
}
