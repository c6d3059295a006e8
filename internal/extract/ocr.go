package extract

import (
	"strings"

	"taxtract/internal/domain"
	"taxtract/internal/parse"
	"taxtract/internal/profile"
)

// ExtractFromText applies a profile's ordered OCR rule chains to the raw
// transcript, independently of the structured source. Per field, rules run
// in declared order and, within a rule, pattern candidates in document
// order; the first candidate accepted by the rule's validity predicate wins
// and the remaining rules for that field are skipped. A matched "0" is an
// explicit zero, distinct from no rule matching (field absent).
//
// Fields are processed in the profile's declared order, so identifier
// fields extracted earlier are visible to the validity predicates of later
// amount rules.
func ExtractFromText(rawText string, p *profile.FormProfile, opts profile.Options) *domain.FieldSet {
	fs := domain.NewFieldSet()
	fs.RawText = rawText
	if p.PassThrough || rawText == "" {
		return fs
	}
	for _, spec := range p.Fields {
		extractField(rawText, &spec, fs, opts)
	}
	return fs
}

func extractField(rawText string, spec *profile.FieldSpec, fs *domain.FieldSet, opts profile.Options) {
	for _, rule := range spec.Rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(rawText, -1) {
			candidate := m[0]
			if len(m) > 1 {
				candidate = m[1]
			}
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if rule.Accept != nil && !rule.Accept(candidate, fs, opts) {
				continue
			}
			if spec.Kind == domain.KindAmount {
				fs.SetAmount(spec.Name, parse.ParseAmount(candidate))
			} else {
				fs.SetText(spec.Name, spec.Kind, parse.NormalizeIdentifier(candidate))
			}
			return
		}
	}
}
