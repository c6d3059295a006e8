package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtract/internal/config"
	"taxtract/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "taxtract", cfg.JWT.Issuer)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "2024-11-30", cfg.Analyzer.APIVersion)
	assert.Equal(t, "prebuilt-read", cfg.Analyzer.GenericModel)
	assert.Equal(t, 120, cfg.Analyzer.TimeoutSecs)
	assert.Equal(t, 0.10, cfg.Extract.RelativeTolerance)
	assert.Equal(t, 100.0, cfg.Extract.AbsoluteTolerance)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TAXTRACT_ANALYZER_ENDPOINT", "https://example.cognitiveservices.azure.com")
	t.Setenv("TAXTRACT_EXTRACT_RELATIVE_TOLERANCE", "0.25")
	t.Setenv("TAXTRACT_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.cognitiveservices.azure.com", cfg.Analyzer.Endpoint)
	assert.Equal(t, 0.25, cfg.Extract.RelativeTolerance)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestModelTable_Defaults(t *testing.T) {
	a := &config.AnalyzerConfig{}
	table := a.ModelTable()

	assert.Equal(t, "prebuilt-tax.us.w2", table[domain.DocTypeW2])
	assert.Equal(t, "prebuilt-tax.us.1099INT", table[domain.DocType1099INT])
	assert.Equal(t, "prebuilt-tax.us.5498", table[domain.DocType5498])
	assert.Len(t, table, len(domain.AllDocumentTypes))
	assert.NotContains(t, table, domain.DocTypeUnknown)
}

func TestModelTable_Overrides(t *testing.T) {
	a := &config.AnalyzerConfig{Models: map[string]string{
		"w2":        "custom-w2-v3",
		"nonsense":  "ignored",
		"form_1098": "custom-1098",
	}}
	table := a.ModelTable()

	assert.Equal(t, "custom-w2-v3", table[domain.DocTypeW2])
	assert.Equal(t, "custom-1098", table[domain.DocType1098])
	assert.Equal(t, "prebuilt-tax.us.1099INT", table[domain.DocType1099INT])
	assert.Len(t, table, len(domain.AllDocumentTypes))
}
