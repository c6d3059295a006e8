package domain

// FileType represents the allowed document file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// DocumentType identifies a supported US tax form. The declaration order of
// AllDocumentTypes is the canonical priority order used to break classifier ties.
type DocumentType string

const (
	DocTypeW2       DocumentType = "W2"
	DocType1099INT  DocumentType = "FORM_1099_INT"
	DocType1099DIV  DocumentType = "FORM_1099_DIV"
	DocType1099MISC DocumentType = "FORM_1099_MISC"
	DocType1099NEC  DocumentType = "FORM_1099_NEC"
	DocType1099R    DocumentType = "FORM_1099_R"
	DocType1099G    DocumentType = "FORM_1099_G"
	DocType1099K    DocumentType = "FORM_1099_K"
	DocType1098     DocumentType = "FORM_1098"
	DocType1098E    DocumentType = "FORM_1098_E"
	DocType1098T    DocumentType = "FORM_1098_T"
	DocType5498     DocumentType = "FORM_5498"
	DocTypeUnknown  DocumentType = "UNKNOWN"
)

// AllDocumentTypes lists every concrete form type in canonical priority order.
// UNKNOWN is deliberately excluded.
var AllDocumentTypes = []DocumentType{
	DocTypeW2,
	DocType1099INT,
	DocType1099DIV,
	DocType1099MISC,
	DocType1099NEC,
	DocType1099R,
	DocType1099G,
	DocType1099K,
	DocType1098,
	DocType1098E,
	DocType1098T,
	DocType5498,
}

// ParseDocumentType maps an external string to a DocumentType, returning
// UNKNOWN for anything unrecognized.
func ParseDocumentType(s string) DocumentType {
	for _, t := range AllDocumentTypes {
		if string(t) == s {
			return t
		}
	}
	return DocTypeUnknown
}

// ValueKind describes how a canonical field's value is typed and coerced.
type ValueKind string

const (
	KindAmount     ValueKind = "amount"
	KindIdentifier ValueKind = "identifier"
	KindFreeText   ValueKind = "free_text"
)

// ExtractionSource records which analyzer pass produced a field set.
type ExtractionSource string

const (
	SourceStructuredModel ExtractionSource = "structured_model"
	SourceOCRFallback     ExtractionSource = "ocr_fallback"
)
