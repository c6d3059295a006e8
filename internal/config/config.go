package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"taxtract/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	Analyzer AnalyzerConfig
	Extract  ExtractConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// JWTConfig holds JWT validation settings for the API surface.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for fetching stored documents.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalyzerConfig holds document-understanding service settings.
type AnalyzerConfig struct {
	Endpoint           string            `mapstructure:"endpoint"`
	APIKey             string            `mapstructure:"api_key"`
	APIVersion         string            `mapstructure:"api_version"`
	TimeoutSecs        int               `mapstructure:"timeout_secs"`
	PollIntervalMillis int               `mapstructure:"poll_interval_millis"`
	GenericModel       string            `mapstructure:"generic_model"`
	Models             map[string]string `mapstructure:"models"`
}

// ModelTable resolves per-document-type analyzer model IDs, merging builtin
// defaults with any configured overrides.
func (a *AnalyzerConfig) ModelTable() map[domain.DocumentType]string {
	table := map[domain.DocumentType]string{
		domain.DocTypeW2:       "prebuilt-tax.us.w2",
		domain.DocType1099INT:  "prebuilt-tax.us.1099INT",
		domain.DocType1099DIV:  "prebuilt-tax.us.1099DIV",
		domain.DocType1099MISC: "prebuilt-tax.us.1099MISC",
		domain.DocType1099NEC:  "prebuilt-tax.us.1099NEC",
		domain.DocType1099R:    "prebuilt-tax.us.1099R",
		domain.DocType1099G:    "prebuilt-tax.us.1099G",
		domain.DocType1099K:    "prebuilt-tax.us.1099K",
		domain.DocType1098:     "prebuilt-tax.us.1098",
		domain.DocType1098E:    "prebuilt-tax.us.1098E",
		domain.DocType1098T:    "prebuilt-tax.us.1098T",
		domain.DocType5498:     "prebuilt-tax.us.5498",
	}
	for k, v := range a.Models {
		t := domain.ParseDocumentType(strings.ToUpper(k))
		if t != domain.DocTypeUnknown {
			table[t] = v
		}
	}
	return table
}

// ExtractConfig holds reconciliation tuning. RelativeTolerance is the
// fractional disagreement bound before the OCR value overrides the
// structured one; set it to 0 to fall back to the absolute dollar threshold.
type ExtractConfig struct {
	RelativeTolerance float64 `mapstructure:"relative_tolerance"`
	AbsoluteTolerance float64 `mapstructure:"absolute_tolerance"`
}

// Load reads configuration from environment variables with the TAXTRACT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "taxtract")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "taxtract-documents")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Analyzer defaults
	v.SetDefault("analyzer.endpoint", "")
	v.SetDefault("analyzer.api_key", "")
	v.SetDefault("analyzer.api_version", "2024-11-30")
	v.SetDefault("analyzer.timeout_secs", 120)
	v.SetDefault("analyzer.poll_interval_millis", 2000)
	v.SetDefault("analyzer.generic_model", "prebuilt-read")

	// Extract defaults
	v.SetDefault("extract.relative_tolerance", 0.10)
	v.SetDefault("extract.absolute_tolerance", 100.0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "TAXTRACT_SERVER_PORT",
		"server.read_timeout":           "TAXTRACT_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "TAXTRACT_SERVER_WRITE_TIMEOUT",
		"server.environment":            "TAXTRACT_SERVER_ENVIRONMENT",
		"jwt.secret":                    "TAXTRACT_JWT_SECRET",
		"jwt.issuer":                    "TAXTRACT_JWT_ISSUER",
		"s3.region":                     "TAXTRACT_S3_REGION",
		"s3.bucket":                     "TAXTRACT_S3_BUCKET",
		"s3.endpoint":                   "TAXTRACT_S3_ENDPOINT",
		"s3.access_key":                 "TAXTRACT_S3_ACCESS_KEY",
		"s3.secret_key":                 "TAXTRACT_S3_SECRET_KEY",
		"log.level":                     "TAXTRACT_LOG_LEVEL",
		"log.format":                    "TAXTRACT_LOG_FORMAT",
		"analyzer.endpoint":             "TAXTRACT_ANALYZER_ENDPOINT",
		"analyzer.api_key":              "TAXTRACT_ANALYZER_API_KEY",
		"analyzer.api_version":          "TAXTRACT_ANALYZER_API_VERSION",
		"analyzer.timeout_secs":         "TAXTRACT_ANALYZER_TIMEOUT_SECS",
		"analyzer.poll_interval_millis": "TAXTRACT_ANALYZER_POLL_INTERVAL_MILLIS",
		"analyzer.generic_model":        "TAXTRACT_ANALYZER_GENERIC_MODEL",
		"extract.relative_tolerance":    "TAXTRACT_EXTRACT_RELATIVE_TOLERANCE",
		"extract.absolute_tolerance":    "TAXTRACT_EXTRACT_ABSOLUTE_TOLERANCE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TAXTRACT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAXTRACT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Analyzer = AnalyzerConfig{
		Endpoint:           v.GetString("analyzer.endpoint"),
		APIKey:             v.GetString("analyzer.api_key"),
		APIVersion:         v.GetString("analyzer.api_version"),
		TimeoutSecs:        v.GetInt("analyzer.timeout_secs"),
		PollIntervalMillis: v.GetInt("analyzer.poll_interval_millis"),
		GenericModel:       v.GetString("analyzer.generic_model"),
		Models:             v.GetStringMapString("analyzer.models"),
	}
	cfg.Extract = ExtractConfig{
		RelativeTolerance: v.GetFloat64("extract.relative_tolerance"),
		AbsoluteTolerance: v.GetFloat64("extract.absolute_tolerance"),
	}

	return cfg, nil
}
