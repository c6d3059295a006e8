package docintel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtract/internal/analyzer/docintel"
	"taxtract/internal/config"
	"taxtract/internal/domain"
	"taxtract/internal/port"
)

func testClient(endpoint string) *docintel.Client {
	cfg := &config.AnalyzerConfig{
		APIKey:             "test-key",
		TimeoutSecs:        5,
		PollIntervalMillis: 10,
	}
	return docintel.NewClientWithEndpoint(cfg, endpoint)
}

func succeededBody() map[string]any {
	return map[string]any{
		"status": "succeeded",
		"analyzeResult": map[string]any{
			"content": "Form 1099-INT\n1 Interest income $1,500.00",
			"documents": []map[string]any{{
				"docType": "tax.us.1099INT",
				"fields": map[string]any{
					"InterestIncome": map[string]any{"type": "number", "content": "1,500.00"},
					"Payer": map[string]any{
						"type": "object",
						"valueObject": map[string]any{
							"Name": map[string]any{"type": "string", "content": "First National Bank"},
						},
					},
				},
			}},
		},
	}
}

func TestAnalyze_SynchronousResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "documentModels/prebuilt-tax.us.1099INT:analyze")
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["base64Source"])

		_ = json.NewEncoder(w).Encode(succeededBody())
	}))
	defer srv.Close()

	out, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:     "prebuilt-tax.us.1099INT",
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.RawText, "Form 1099-INT"))
	assert.Equal(t, "1,500.00", out.Fields["InterestIncome"])
	assert.Equal(t, "First National Bank", out.Fields["Payer.Name"])
}

func TestAnalyze_PollsUntilSucceeded(t *testing.T) {
	polls := 0
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("POST /documentintelligence/documentModels/prebuilt-read:analyze", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Operation-Location", srv.URL+"/operations/123")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /operations/123", func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls < 3 {
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "running"})
			return
		}
		_ = json.NewEncoder(w).Encode(succeededBody())
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	out, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:   "prebuilt-read",
		FileBytes: []byte("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, polls)
	assert.Contains(t, out.RawText, "Interest income")
}

func TestAnalyze_ModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NotFound","message":"model not found"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:   "prebuilt-tax.us.1099INT",
		FileBytes: []byte("x"),
	})

	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestAnalyze_FailedOperationModelNotFound(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Operation-Location", srv.URL+"/operations/9")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /operations/9", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "failed",
			"error":  map[string]any{"code": "ModelNotFound", "message": "no such model"},
		})
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:   "prebuilt-tax.us.5498",
		FileBytes: []byte("x"),
	})

	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestAnalyze_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:   "prebuilt-read",
		FileBytes: []byte("x"),
	})

	assert.ErrorIs(t, err, domain.ErrAnalyzerFailed)
	assert.NotErrorIs(t, err, domain.ErrModelNotFound)

	var apiErr *domain.AnalyzerError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "boom")
}

func TestAnalyze_MissingOperationLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Analyze(context.Background(), port.AnalyzeInput{
		ModelID:   "prebuilt-read",
		FileBytes: []byte("x"),
	})

	assert.ErrorIs(t, err, domain.ErrAnalyzerFailed)
}
