// Package extract turns the two views of a document (the vendor's
// structured field bag and the raw OCR transcript) into canonical field
// sets, and reconciles them into one corrected set.
package extract

import (
	"strings"

	"taxtract/internal/domain"
	"taxtract/internal/parse"
	"taxtract/internal/profile"
)

// MapStructured applies a profile's vendor-key table to the analyzer's field
// bag. For each canonical field the first alias carrying a value wins; later
// aliases are ignored, which absorbs vendor schema drift across releases
// without special-casing call sites. The pass-through profile maps every
// vendor key 1:1 with type-sniffing coercion.
func MapStructured(bag map[string]string, p *profile.FormProfile) *domain.FieldSet {
	fs := domain.NewFieldSet()
	if len(bag) == 0 {
		return fs
	}
	if p.PassThrough {
		for k, v := range bag {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if parse.LooksNumeric(v) {
				fs.SetAmount(k, parse.ParseAmount(v))
			} else {
				fs.SetText(k, domain.KindFreeText, v)
			}
		}
		return fs
	}
	for _, spec := range p.Fields {
		for _, alias := range spec.Aliases {
			v, ok := bag[alias]
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			if spec.Kind == domain.KindAmount {
				fs.SetAmount(spec.Name, parse.ParseAmount(v))
			} else {
				fs.SetText(spec.Name, spec.Kind, parse.NormalizeIdentifier(v))
			}
			break
		}
	}
	return fs
}
