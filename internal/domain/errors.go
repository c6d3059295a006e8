package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document is empty")
	ErrDownloadFailed      = errors.New("document download from storage failed")

	// ErrModelNotFound means the analyzer has no model for the declared
	// document type. It is an expected outcome and triggers the generic
	// read-model fallback rather than failing the run.
	ErrModelNotFound = errors.New("analyzer model not found")

	// ErrAnalyzerFailed wraps unexpected analyzer failures. These are fatal
	// for the run and propagate to the caller.
	ErrAnalyzerFailed = errors.New("document analyzer failed")
)

// AnalyzerError carries the HTTP status and response snippet of an analyzer
// API failure. It unwraps to ErrAnalyzerFailed so callers can match the
// sentinel without losing the diagnostics.
type AnalyzerError struct {
	Status  int
	Message string
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer API error (status %d): %s", e.Status, e.Message)
}

func (e *AnalyzerError) Unwrap() error { return ErrAnalyzerFailed }
