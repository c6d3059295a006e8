// Package service drives the extraction pipeline: one structured analyzer
// call (with a text-only fallback when the declared type's model does not
// exist), the structured/OCR dual extraction, reconciliation, and the
// classification re-check.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taxtract/internal/classify"
	"taxtract/internal/config"
	"taxtract/internal/domain"
	"taxtract/internal/extract"
	"taxtract/internal/port"
	"taxtract/internal/profile"
)

// ExtractInput carries one document through the pipeline.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	// DeclaredType is the caller's claim about the form type. It may be
	// corrected by the classifier.
	DeclaredType domain.DocumentType
	// TargetName selects the right record on documents holding several
	// instances of the same party role. Optional.
	TargetName string
}

// ExtractResult is one completed extraction attempt.
type ExtractResult struct {
	FieldSet *domain.FieldSet
	Source   domain.ExtractionSource
}

// ExtractionService is the single entry point into the reconciliation engine.
type ExtractionService struct {
	analyzer     port.DocumentAnalyzer
	registry     *profile.Registry
	models       map[domain.DocumentType]string
	genericModel string
	logger       *zap.Logger
}

// NewExtractionService wires the pipeline from its collaborators.
func NewExtractionService(
	analyzer port.DocumentAnalyzer,
	registry *profile.Registry,
	analyzerCfg *config.AnalyzerConfig,
	logger *zap.Logger,
) *ExtractionService {
	return &ExtractionService{
		analyzer:     analyzer,
		registry:     registry,
		models:       analyzerCfg.ModelTable(),
		genericModel: analyzerCfg.GenericModel,
		logger:       logger,
	}
}

// Extract runs the full pipeline for one document. Exactly one analyzer
// round trip is made, plus one more only when the declared type's model is
// missing. All remaining work is synchronous and in-memory, so once the
// analyzer returns, the call runs to completion. Any analyzer failure other
// than a missing model is fatal and propagates to the caller.
func (s *ExtractionService) Extract(ctx context.Context, in ExtractInput) (*ExtractResult, error) {
	if len(in.FileBytes) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	source := domain.SourceStructuredModel
	out, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{
		ModelID:     s.modelFor(in.DeclaredType),
		FileBytes:   in.FileBytes,
		ContentType: in.ContentType,
	})
	if errors.Is(err, domain.ErrModelNotFound) {
		s.logger.Warn("structured model unavailable, retrying with text-only model",
			zap.String("document_type", string(in.DeclaredType)),
			zap.String("generic_model", s.genericModel))
		source = domain.SourceOCRFallback
		out, err = s.analyzer.Analyze(ctx, port.AnalyzeInput{
			ModelID:     s.genericModel,
			FileBytes:   in.FileBytes,
			ContentType: in.ContentType,
		})
		if out != nil {
			// The fallback pass is OCR-only: reconciliation degenerates
			// to pure OCR fill against an empty structured set.
			out.Fields = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("analyzing document: %w", err)
	}

	opts := profile.Options{TargetName: in.TargetName}
	fs := s.runPipeline(out, in.DeclaredType, opts)

	detected := classify.Classify(out.RawText, s.registry)
	if detected != domain.DocTypeUnknown && detected != in.DeclaredType {
		// One re-extraction with the corrected type, reusing the same
		// analyzer response. No further reclassification: a single pass
		// prevents oscillation between two candidate types.
		s.logger.Info("classifier disagrees with declared type",
			zap.String("declared", string(in.DeclaredType)),
			zap.String("detected", string(detected)))
		fs = s.runPipeline(out, detected, opts)
		fs.CorrectedType = detected
	}

	return &ExtractResult{FieldSet: fs, Source: source}, nil
}

func (s *ExtractionService) runPipeline(out *port.AnalyzeOutput, t domain.DocumentType, opts profile.Options) *domain.FieldSet {
	p, ok := s.registry.Profile(t)
	if !ok {
		p = profile.Generic()
	}
	structured := extract.MapStructured(out.Fields, p)
	ocr := extract.ExtractFromText(out.RawText, p, opts)
	fs := extract.Reconcile(structured, ocr, p)
	fs.RawText = out.RawText
	return fs
}

func (s *ExtractionService) modelFor(t domain.DocumentType) string {
	if m, ok := s.models[t]; ok && m != "" {
		return m
	}
	return s.genericModel
}
