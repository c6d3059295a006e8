package profile

import (
	"regexp"

	"taxtract/internal/domain"
)

// NameSimilarityThreshold is the minimum edit-distance similarity for a
// person-name candidate to be accepted against a requested target name.
const NameSimilarityThreshold = 0.7

// Options carries per-call matching context available to rule predicates.
type Options struct {
	// TargetName restricts person-name matches on multi-record documents:
	// when set, a name candidate is accepted only if sufficiently similar.
	TargetName string
}

// AcceptFunc is a post-match validity predicate. It receives the captured
// candidate, the fields extracted so far, and the call options. A nil
// AcceptFunc accepts every candidate.
type AcceptFunc func(candidate string, got *domain.FieldSet, opts Options) bool

// Rule pairs an extraction pattern with its validity predicate. Rules for a
// field are tried in declared order; within a rule, pattern candidates are
// tried in document order. The first accepted candidate wins the field.
type Rule struct {
	Pattern *regexp.Regexp
	Accept  AcceptFunc
}

// FieldSpec declares one canonical field of a form profile.
type FieldSpec struct {
	Name string
	Kind domain.ValueKind
	// Aliases are the vendor field-bag keys for this field, in priority
	// order. The first alias carrying a value wins; later aliases for an
	// already-set field are ignored. This absorbs provider schema drift.
	Aliases []string
	// Rules is the ordered OCR extraction chain. More specific patterns
	// (literal box-label text) precede more permissive ones.
	Rules []Rule
}

// Tolerance bounds how far structured and OCR amounts may disagree before
// the OCR value overrides. Relative is a fraction of the larger magnitude;
// Absolute is a dollar threshold used when the relative test is disabled.
type Tolerance struct {
	Relative float64
	Absolute float64
}

// DefaultTolerance is the empirically chosen disagreement bound. The exact
// numbers are configurable per deployment and not load-bearing.
var DefaultTolerance = Tolerance{Relative: 0.10, Absolute: 100}

// FormProfile is the static per-document-type configuration: vendor mapping,
// OCR rule chains, classification indicators, critical fields and the
// adjacency pairs subject to swap detection.
type FormProfile struct {
	Type       domain.DocumentType
	Fields     []FieldSpec
	Indicators []string
	// Critical fields are cross-validated between sources, in declared order.
	Critical []string
	// Adjacent pairs are fields physically adjacent on the form, candidates
	// for transposition correction.
	Adjacent  [][2]string
	Tolerance Tolerance
	// PassThrough marks the generic profile, which maps every vendor key
	// 1:1 with type-sniffing coercion instead of a declared field table.
	PassThrough bool
}

// Spec returns the field spec for a canonical field name.
func (p *FormProfile) Spec(name string) (*FieldSpec, bool) {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i], true
		}
	}
	return nil, false
}

// Registry holds the builtin form profiles. It is built once at startup and
// read-only thereafter, so concurrent document runs share it without locking.
type Registry struct {
	profiles map[domain.DocumentType]*FormProfile
	order    []domain.DocumentType
}

// NewRegistry builds the registry from the builtin profile table with the
// default tolerance.
func NewRegistry() *Registry {
	return NewRegistryWithTolerance(DefaultTolerance)
}

// NewRegistryWithTolerance builds the registry applying a configured
// tolerance to every profile.
func NewRegistryWithTolerance(tol Tolerance) *Registry {
	r := &Registry{profiles: make(map[domain.DocumentType]*FormProfile)}
	for _, p := range builtinProfiles() {
		p.Tolerance = tol
		r.profiles[p.Type] = p
		r.order = append(r.order, p.Type)
	}
	return r
}

// Profile returns the profile for a document type, or false for unknown and
// unsupported types. Callers then fall back to Generic.
func (r *Registry) Profile(t domain.DocumentType) (*FormProfile, bool) {
	p, ok := r.profiles[t]
	return p, ok
}

// Types returns the registered document types in canonical priority order.
func (r *Registry) Types() []domain.DocumentType {
	return r.order
}

// Generic returns the pass-through profile used when no typed profile
// exists: every vendor field maps 1:1, numbers sniffed from the raw value.
func Generic() *FormProfile {
	return &FormProfile{
		Type:        domain.DocTypeUnknown,
		PassThrough: true,
		Tolerance:   DefaultTolerance,
	}
}
