// Package classify scores raw OCR text against every form profile's
// indicator phrases to recover the document type.
package classify

import (
	"strings"

	"taxtract/internal/domain"
	"taxtract/internal/profile"
)

// Classify returns the document type whose indicator phrases occur most
// often in rawText (case-insensitive substring match, equal weight per
// phrase). A strictly higher count wins; ties keep the earlier profile in
// the registry's canonical order. A best score of zero degrades to UNKNOWN.
// Pure and total: it never fails.
func Classify(rawText string, reg *profile.Registry) domain.DocumentType {
	lower := strings.ToLower(rawText)
	best := domain.DocTypeUnknown
	bestScore := 0
	for _, t := range reg.Types() {
		p, ok := reg.Profile(t)
		if !ok {
			continue
		}
		score := 0
		for _, phrase := range p.Indicators {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				score++
			}
		}
		if score > bestScore {
			best = t
			bestScore = score
		}
	}
	return best
}
