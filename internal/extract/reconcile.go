package extract

import (
	"math"
	"strings"

	"taxtract/internal/domain"
	"taxtract/internal/profile"
	"taxtract/internal/validate"
)

// Reconcile merges the structured and OCR field sets into one corrected set.
// OCR is treated as ground truth on conflict: the structured model is the
// more error-prone source for box-to-value alignment. Per critical field, in
// the profile's declared order, the first applicable rule wins:
//
//  1. structured absent or zero, OCR present → OCR value (fill);
//  2. both amounts present and disagreeing beyond tolerance → OCR (override);
//  3. text fields: fill, plus replacement when the structured value is form
//     boilerplate rather than data.
//
// Adjacency swap detection runs afterwards against the ORIGINAL structured
// values, not corrected ones, so one correction cannot cascade into another.
// Fields untouched by any rule keep the structured value; OCR-only fields
// not declared critical are merged in additively. The whole operation is
// deterministic and idempotent: re-running it on its own output is a no-op.
func Reconcile(structured, ocr *domain.FieldSet, p *profile.FormProfile) *domain.FieldSet {
	out := structured.Clone()
	if out.RawText == "" {
		out.RawText = ocr.RawText
	}

	for _, name := range p.Critical {
		kind := domain.KindFreeText
		if spec, ok := p.Spec(name); ok {
			kind = spec.Kind
		}
		if kind == domain.KindAmount {
			reconcileAmount(name, structured, ocr, out, p.Tolerance)
		} else {
			reconcileText(name, kind, structured, ocr, out)
		}
	}

	for _, pair := range p.Adjacent {
		sa, okA := structured.Amount(pair[0])
		sb, okB := structured.Amount(pair[1])
		oa, okOA := ocr.Amount(pair[0])
		ob, okOB := ocr.Amount(pair[1])
		if !okA || !okB || !okOA || !okOB {
			continue
		}
		if sa == 0 || sb == 0 || oa == 0 || ob == 0 {
			continue
		}
		// Crossed agreement is a transposition: the two values landed in
		// each other's boxes. OCR's per-field assignment breaks the
		// symmetric ambiguity a plain threshold diff cannot resolve.
		if withinTolerance(sa, ob, p.Tolerance) && withinTolerance(sb, oa, p.Tolerance) {
			out.SetAmount(pair[0], oa)
			out.SetAmount(pair[1], ob)
		}
	}

	for name, v := range ocr.Fields {
		if !out.Has(name) {
			out.Fields[name] = v
		}
	}
	return out
}

func reconcileAmount(name string, structured, ocr, out *domain.FieldSet, tol profile.Tolerance) {
	ov, ook := ocr.Amount(name)
	if !ook {
		return
	}
	sv, sok := structured.Amount(name)
	if !sok || sv == 0 {
		out.SetAmount(name, ov)
		return
	}
	if !withinTolerance(sv, ov, tol) {
		out.SetAmount(name, ov)
	}
}

func reconcileText(name string, kind domain.ValueKind, structured, ocr, out *domain.FieldSet) {
	ot, ook := ocr.Text(name)
	st, sok := structured.Text(name)
	if !sok || strings.TrimSpace(st) == "" {
		if ook {
			out.SetText(name, kind, ot)
		}
		return
	}
	if ook && validate.IsBoilerplate(st) {
		out.SetText(name, kind, ot)
	}
}

func withinTolerance(a, b float64, tol profile.Tolerance) bool {
	if tol.Relative > 0 {
		return relativeDiff(a, b) <= tol.Relative
	}
	return math.Abs(a-b) <= tol.Absolute
}

func relativeDiff(a, b float64) float64 {
	m := math.Max(math.Abs(a), math.Abs(b))
	if m == 0 {
		return 0
	}
	return math.Abs(a-b) / m
}
