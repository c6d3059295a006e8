package domain

// FieldValue is one extracted canonical field value. Amount fields carry a
// non-negative finite number in Amount; identifier and free-text fields carry
// a trimmed string in Text. Zero is a valid amount, distinct from a field
// being absent from the set.
type FieldValue struct {
	Kind   ValueKind `json:"kind"`
	Amount float64   `json:"amount,omitempty"`
	Text   string    `json:"text,omitempty"`
}

// FieldSet maps canonical field names to extracted values for one document.
// Fields never observed are absent from the map, never present with a null
// value. A FieldSet never mixes values extracted under two different
// document types; CorrectedType is set only when classification disagreed
// with the declared type and a re-extraction occurred.
type FieldSet struct {
	Fields        map[string]FieldValue `json:"fields"`
	RawText       string                `json:"-"`
	CorrectedType DocumentType          `json:"corrected_document_type,omitempty"`
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{Fields: make(map[string]FieldValue)}
}

// Amount returns the numeric value of an amount field and whether it is present.
func (fs *FieldSet) Amount(name string) (float64, bool) {
	v, ok := fs.Fields[name]
	if !ok || v.Kind != KindAmount {
		return 0, false
	}
	return v.Amount, true
}

// Text returns the string value of an identifier or free-text field and
// whether it is present.
func (fs *FieldSet) Text(name string) (string, bool) {
	v, ok := fs.Fields[name]
	if !ok || v.Kind == KindAmount {
		return "", false
	}
	return v.Text, true
}

// Has reports whether the field is present, regardless of kind.
func (fs *FieldSet) Has(name string) bool {
	_, ok := fs.Fields[name]
	return ok
}

// SetAmount records an amount field. Negative and non-finite inputs are
// clamped to 0 to preserve the non-negative invariant.
func (fs *FieldSet) SetAmount(name string, v float64) {
	if v < 0 || v != v {
		v = 0
	}
	fs.Fields[name] = FieldValue{Kind: KindAmount, Amount: v}
}

// SetText records an identifier or free-text field.
func (fs *FieldSet) SetText(name string, kind ValueKind, v string) {
	fs.Fields[name] = FieldValue{Kind: kind, Text: v}
}

// Clone returns a deep copy of the field set.
func (fs *FieldSet) Clone() *FieldSet {
	out := &FieldSet{
		Fields:        make(map[string]FieldValue, len(fs.Fields)),
		RawText:       fs.RawText,
		CorrectedType: fs.CorrectedType,
	}
	for k, v := range fs.Fields {
		out.Fields[k] = v
	}
	return out
}
