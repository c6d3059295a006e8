// Package docintel implements port.DocumentAnalyzer against a Document
// Intelligence style REST API: submit the document bytes, poll the returned
// operation until it completes, and map the result into the raw transcript
// plus a flattened vendor field bag.
package docintel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taxtract/internal/config"
	"taxtract/internal/domain"
	"taxtract/internal/port"
)

const defaultAPIVersion = "2024-11-30"

// Client calls the document-understanding service over HTTP.
type Client struct {
	endpoint     string
	apiKey       string
	apiVersion   string
	pollInterval time.Duration
	client       *http.Client
}

// NewClient creates a Client from the analyzer config.
func NewClient(cfg *config.AnalyzerConfig) *Client {
	return NewClientWithEndpoint(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a Client pointing at a custom endpoint
// (for testing against httptest servers).
func NewClientWithEndpoint(cfg *config.AnalyzerConfig, endpoint string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	pollInterval := time.Duration(cfg.PollIntervalMillis) * time.Millisecond
	if pollInterval == 0 {
		pollInterval = 2 * time.Second
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		apiKey:       cfg.APIKey,
		apiVersion:   apiVersion,
		pollInterval: pollInterval,
		client:       &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type analyzeField struct {
	Type        string                  `json:"type"`
	Content     string                  `json:"content"`
	ValueString string                  `json:"valueString"`
	ValueObject map[string]analyzeField `json:"valueObject"`
}

type analyzeDocument struct {
	DocType string                  `json:"docType"`
	Fields  map[string]analyzeField `json:"fields"`
}

type analyzeResult struct {
	Content   string            `json:"content"`
	Documents []analyzeDocument `json:"documents"`
}

type analyzeResponse struct {
	Status        string         `json:"status"`
	Error         *apiError      `json:"error"`
	AnalyzeResult *analyzeResult `json:"analyzeResult"`
}

// Analyze submits the document and waits for the analysis result. It returns
// domain.ErrModelNotFound when the service has no such model; every other
// failure is wrapped as domain.ErrAnalyzerFailed with enough of the original
// message to diagnose.
func (c *Client) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	reqBody, err := json.Marshal(map[string]string{
		"base64Source": base64.StdEncoding.EncodeToString(input.FileBytes),
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		c.endpoint, input.ModelID, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling analyzer: %w: %v", domain.ErrAnalyzerFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Some deployments answer synchronously.
		return mapResponse(respBody, input.ModelID)
	case http.StatusAccepted:
		opURL := resp.Header.Get("Operation-Location")
		if opURL == "" {
			return nil, fmt.Errorf("analyzer accepted without operation location: %w", domain.ErrAnalyzerFailed)
		}
		return c.poll(ctx, opURL, input.ModelID)
	case http.StatusNotFound:
		return nil, fmt.Errorf("model %q: %w", input.ModelID, domain.ErrModelNotFound)
	default:
		return nil, statusError(resp.StatusCode, respBody)
	}
}

func (c *Client) poll(ctx context.Context, opURL, modelID string) (*port.AnalyzeOutput, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating poll request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("polling analyzer: %w: %v", domain.ErrAnalyzerFailed, err)
		}
		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading poll response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, statusError(resp.StatusCode, respBody)
		}

		var parsed analyzeResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("decoding poll response: %w", err)
		}
		switch parsed.Status {
		case "succeeded":
			return mapResponse(respBody, modelID)
		case "failed":
			if parsed.Error != nil && strings.Contains(parsed.Error.Code, "ModelNotFound") {
				return nil, fmt.Errorf("model %q: %w", modelID, domain.ErrModelNotFound)
			}
			msg := ""
			if parsed.Error != nil {
				msg = parsed.Error.Message
			}
			return nil, fmt.Errorf("analysis failed: %s: %w", msg, domain.ErrAnalyzerFailed)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func mapResponse(body []byte, modelID string) (*port.AnalyzeOutput, error) {
	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding analyzer response: %w", err)
	}
	if parsed.AnalyzeResult == nil {
		return nil, fmt.Errorf("analyzer returned no result for model %q: %w", modelID, domain.ErrAnalyzerFailed)
	}
	out := &port.AnalyzeOutput{
		RawText: parsed.AnalyzeResult.Content,
		Fields:  make(map[string]string),
	}
	for _, doc := range parsed.AnalyzeResult.Documents {
		flattenFields("", doc.Fields, out.Fields)
	}
	return out, nil
}

// flattenFields maps nested vendor fields to dotted keys ("Employee.Name").
func flattenFields(prefix string, fields map[string]analyzeField, out map[string]string) {
	for k, f := range fields {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if len(f.ValueObject) > 0 {
			flattenFields(key, f.ValueObject, out)
			continue
		}
		v := f.Content
		if v == "" {
			v = f.ValueString
		}
		if v != "" {
			out[key] = v
		}
	}
}

func statusError(status int, body []byte) error {
	snippet := string(body)
	if len(snippet) > 300 {
		snippet = snippet[:300]
	}
	return &domain.AnalyzerError{Status: status, Message: snippet}
}
