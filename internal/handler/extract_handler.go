package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxtract/internal/domain"
	"taxtract/internal/port"
	"taxtract/internal/service"
)

// ExtractHandler handles document extraction endpoints.
type ExtractHandler struct {
	svc     *service.ExtractionService
	storage port.ObjectStorage
	bucket  string
	logger  *zap.Logger
}

// NewExtractHandler creates a new ExtractHandler. storage may be nil when no
// object store is configured; stored-document requests then fail cleanly.
func NewExtractHandler(svc *service.ExtractionService, storage port.ObjectStorage, bucket string, logger *zap.Logger) *ExtractHandler {
	return &ExtractHandler{svc: svc, storage: storage, bucket: bucket, logger: logger}
}

// s3Ref points at a stored document to extract instead of inline bytes.
type s3Ref struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key" binding:"required"`
}

type extractRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	ContentType  string `json:"content_type" binding:"required"`
	FileBase64   string `json:"file_base64"`
	S3           *s3Ref `json:"s3"`
	TargetName   string `json:"target_name"`
}

type extractResponse struct {
	DocumentType  domain.DocumentType          `json:"document_type"`
	CorrectedType domain.DocumentType          `json:"corrected_document_type,omitempty"`
	Source        domain.ExtractionSource      `json:"source"`
	Fields        map[string]domain.FieldValue `json:"fields"`
}

// Extract handles POST /api/v1/extract
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	if _, ok := domain.AllowedContentTypes[req.ContentType]; !ok {
		HandleError(c, h.logger, domain.ErrUnsupportedFileType)
		return
	}

	var fileBytes []byte
	switch {
	case req.FileBase64 != "":
		data, err := base64.StdEncoding.DecodeString(req.FileBase64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file_base64 is not valid base64")
			return
		}
		fileBytes = data
	case req.S3 != nil:
		data, err := h.downloadObject(c, req.S3)
		if err != nil {
			HandleError(c, h.logger, err)
			return
		}
		fileBytes = data
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "either file_base64 or s3 must be provided")
		return
	}

	declared := domain.ParseDocumentType(req.DocumentType)
	result, err := h.svc.Extract(c.Request.Context(), service.ExtractInput{
		FileBytes:    fileBytes,
		ContentType:  req.ContentType,
		DeclaredType: declared,
		TargetName:   req.TargetName,
	})
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, extractResponse{
		DocumentType:  declared,
		CorrectedType: result.FieldSet.CorrectedType,
		Source:        result.Source,
		Fields:        result.FieldSet.Fields,
	})
}

func (h *ExtractHandler) downloadObject(c *gin.Context, ref *s3Ref) ([]byte, error) {
	if h.storage == nil {
		return nil, fmt.Errorf("object storage not configured: %w", domain.ErrDownloadFailed)
	}
	bucket := ref.Bucket
	if bucket == "" {
		bucket = h.bucket
	}
	data, err := h.storage.Download(c.Request.Context(), bucket, ref.Key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", bucket, ref.Key, domain.ErrDownloadFailed)
	}
	return data, nil
}
