package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/counsellor-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"

	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string   `env:"SERVER_ADDR,notEmpty"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Storage configuration
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"./data/counsellor.db"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	LLMConnectorCfg        LLMConnectorConfig        `envPrefix:"LLM_"`
	UniversityConnectorCfg UniversityConnectorConfig `envPrefix:"UNIVERSITY_"`

	// Scholarship search results cache
	ScholarshipCacheTTL time.Duration `env:"SCHOLARSHIP_CACHE_TTL" envDefault:"30m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Metered key for unioffice; without it .docx resumes and exports are disabled
	UniofficeLicenseKey string `env:"UNIOFFICE_LICENSE_KEY"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider     string `env:"PROVIDER" envDefault:"openai"`
	ChatEndpoint string `env:"CHAT_ENDPOINT" envDefault:"/chat/completions"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	Model                 string  `env:"MODEL" envDefault:"llama-3.3-70b-versatile"`
	ChatTemperature       float32 `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
	ChatMaxTokens         int     `env:"CHAT_MAX_TOKENS" envDefault:"1024"`
	ExtractionTemperature float32 `env:"EXTRACTION_TEMPERATURE" envDefault:"0.1"`
}

type UniversityConnectorConfig struct {
	HTTPClientConfig
	SearchEndpoint string               `env:"SEARCH_ENDPOINT" envDefault:"/search"`
	CacheTTL       time.Duration        `env:"CACHE_TTL" envDefault:"1h"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	UserAgent             string        `env:"USER_AGENT" envDefault:"counsellor-backend/1.0"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds resume upload limits
type FileUploadConfig struct {
	MaxFileSize int64 `env:"MAX_FILE_SIZE" envDefault:"10485760"` // 10 MiB
	// AllowDOCX is derived from UNIOFFICE_LICENSE_KEY
	AllowDOCX bool
}

// DOCXEnabled reports whether a unioffice key is configured
func (c *Config) DOCXEnabled() bool {
	return c.UniofficeLicenseKey != ""
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// A missing env file is fine when variables are set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.FileUploadCfg.AllowDOCX = cfg.DOCXEnabled()

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			errors = append(errors, "DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	case StorageDriverSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH is required when STORAGE_DRIVER=sqlite")
		}
	default:
		errors = append(errors, fmt.Sprintf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverSQLite, cfg.StorageDriver))
	}

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	// Validate generative provider configuration
	llmCfg := cfg.LLMConnectorCfg
	if !cfg.EnableMocks {
		switch llmCfg.Provider {
		case LLMProviderOpenAI:
			if llmCfg.Url == "" {
				errors = append(errors, "LLM_SERVICE_URL is required when LLM_PROVIDER=openai")
			}
		case LLMProviderGemini:
			if llmCfg.GeminiAPIKey == "" {
				errors = append(errors, "LLM_GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
			}
		default:
			errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be %q or %q, got %q", LLMProviderOpenAI, LLMProviderGemini, llmCfg.Provider))
		}
	}

	if llmCfg.ChatTemperature < 0 || llmCfg.ChatTemperature > 2 {
		errors = append(errors, fmt.Sprintf("LLM_CHAT_TEMPERATURE must be between 0 and 2, got %v", llmCfg.ChatTemperature))
	}

	if llmCfg.ExtractionTemperature < 0 || llmCfg.ExtractionTemperature > llmCfg.ChatTemperature {
		errors = append(errors, fmt.Sprintf("LLM_EXTRACTION_TEMPERATURE must be between 0 and LLM_CHAT_TEMPERATURE(%v), got %v", llmCfg.ChatTemperature, llmCfg.ExtractionTemperature))
	}

	if llmCfg.ChatMaxTokens < 0 {
		errors = append(errors, fmt.Sprintf("LLM_CHAT_MAX_TOKENS must not be negative, got %d", llmCfg.ChatMaxTokens))
	}

	if cfg.UniversityConnectorCfg.Url == "" {
		errors = append(errors, "UNIVERSITY_SERVICE_URL is required")
	}

	if cfg.FileUploadCfg.MaxFileSize <= 0 {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_SIZE must be positive, got %d", cfg.FileUploadCfg.MaxFileSize))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
