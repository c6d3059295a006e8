package port

import "context"

// AnalyzeInput carries one document and the analyzer model to run it through.
type AnalyzeInput struct {
	ModelID     string
	FileBytes   []byte
	ContentType string
}

// AnalyzeOutput is the analyzer's two views of the document: the full OCR
// transcript and the vendor's structured field bag (field content strings
// keyed by vendor field name, nested objects flattened with dots).
type AnalyzeOutput struct {
	RawText string
	Fields  map[string]string
}

// DocumentAnalyzer abstracts the external document-understanding service.
// Implementations return domain.ErrModelNotFound when the requested model
// does not exist; any other error is treated as fatal by callers.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
}
