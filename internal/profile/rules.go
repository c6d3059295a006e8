package profile

import (
	"regexp"
	"strings"

	"taxtract/internal/domain"
	"taxtract/internal/validate"
)

// Rule constructors. Each returns a (pattern, predicate) pair; the predicate
// is where exclusion logic lives, so it is declared per rule instead of being
// special-cased at extraction sites.

const amountToken = `(\(?\$?\s*[0-9][0-9,]*(?:\.[0-9]+)?\)?)`

// digitsOnly strips everything but digits, for identifier comparisons.
var nonDigit = regexp.MustCompile(`[^0-9]`)

func digitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// acceptAmount rejects numeric candidates that exactly equal an already
// extracted account or identification number. Those are vendor-shaped false
// positives, not dollar values.
func acceptAmount(candidate string, got *domain.FieldSet, _ Options) bool {
	d := digitsOnly(candidate)
	if d == "" {
		return false
	}
	for _, name := range []string{"accountNumber", "payerTIN", "recipientTIN", "employerEIN", "employeeSSN"} {
		if id, ok := got.Text(name); ok && digitsOnly(id) == d && len(d) >= 6 {
			return false
		}
	}
	return true
}

// amountAfterLabel matches a dollar value following literal box-label text.
func amountAfterLabel(label string) Rule {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^0-9$\n]*` + amountToken)
	return Rule{Pattern: re, Accept: acceptAmount}
}

// amountInBox matches a bare leading box number followed by text and a
// value on the same line. Permissive; always declared after label rules.
func amountInBox(box string) Rule {
	re := regexp.MustCompile(`(?mi)^[ \t]*` + regexp.QuoteMeta(box) + `[.)\s]+[^0-9$\n]*` + amountToken + `[ \t]*$`)
	return Rule{Pattern: re, Accept: acceptAmount}
}

// tinAfterLabel matches an SSN- or EIN-shaped identifier following a label.
func tinAfterLabel(label string) Rule {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^0-9]*([0-9]{3}-[0-9]{2}-[0-9]{4}|[0-9]{2}-[0-9]{7}|[0-9]{9})`)
	return Rule{Pattern: re, Accept: func(c string, _ *domain.FieldSet, _ Options) bool {
		return len(digitsOnly(c)) == 9
	}}
}

// identifierAfterLabel matches a free-form identifier token after a label.
func identifierAfterLabel(label string) Rule {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^\nA-Za-z0-9]*([0-9A-Za-z][0-9A-Za-z-]{3,24})`)
	return Rule{Pattern: re, Accept: func(c string, _ *domain.FieldSet, _ Options) bool {
		return len(strings.TrimSpace(c)) >= 4
	}}
}

// nameAfterLabel captures the first text line following a label line: a
// non-greedy capture that never runs past the next line break, so it cannot
// swallow the next field's own label. gateTarget enables similarity scoring
// against Options.TargetName for multi-record documents.
func nameAfterLabel(label string, gateTarget bool) Rule {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^\n]*\n+[ \t]*([A-Za-z][A-Za-z .,&'-]*[A-Za-z.])`)
	return Rule{Pattern: re, Accept: func(c string, _ *domain.FieldSet, opts Options) bool {
		c = strings.TrimSpace(c)
		if validate.IsBoilerplate(c) {
			return false
		}
		if gateTarget && opts.TargetName != "" {
			return validate.Similarity(c, opts.TargetName) >= NameSimilarityThreshold
		}
		return true
	}}
}

// addressAccept requires address shape in addition to the boilerplate filter.
func addressAccept(c string, _ *domain.FieldSet, _ Options) bool {
	return validate.IsAddressShaped(c)
}

// addressAfterLabel captures up to two lines following a label line and
// accepts them only if they are address-shaped.
func addressAfterLabel(label string) Rule {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^\n]*\n+[ \t]*([^\n]+(?:\n[^\n]+)?)`)
	return Rule{Pattern: re, Accept: addressAccept}
}

// addressTwoLines matches a street line followed by a city/state/ZIP line
// anywhere in the text. Permissive fallback, shape-validated.
func addressTwoLines() Rule {
	re := regexp.MustCompile(`(?m)^[ \t]*([0-9]+ [^\n]+\n[^\n]*\b[A-Z]{2},?[ \t]+[0-9]{5}(?:-[0-9]{4})?)\b`)
	return Rule{Pattern: re, Accept: addressAccept}
}

// addressOneLine matches a single-line street-through-ZIP address.
func addressOneLine() Rule {
	re := regexp.MustCompile(`(?m)^[ \t]*([0-9]+ [^\n]*\b[A-Z]{2},?[ \t]+[0-9]{5}(?:-[0-9]{4})?)\b`)
	return Rule{Pattern: re, Accept: addressAccept}
}
