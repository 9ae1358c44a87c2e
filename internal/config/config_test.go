package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_ADDR", ":8000")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("LLM_SERVICE_URL", "https://api.groq.com/openai/v1")
	t.Setenv("UNIVERSITY_SERVICE_URL", "http://universities.hipolabs.com")
	t.Setenv("UNIVERSITY_RETRY_ATTEMPTS", "3")
	t.Setenv("UNIVERSITY_RETRY_DELAY", "100ms")
	t.Setenv("UNIVERSITY_RETRY_MAX_DELAY", "1s")
}

func TestParse_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverSQLite, cfg.StorageDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLMConnectorCfg.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLMConnectorCfg.Model)
	assert.InDelta(t, 0.7, cfg.LLMConnectorCfg.ChatTemperature, 1e-6)
	assert.InDelta(t, 0.1, cfg.LLMConnectorCfg.ExtractionTemperature, 1e-6)
	assert.Equal(t, 1024, cfg.LLMConnectorCfg.ChatMaxTokens)
	assert.Equal(t, uint(3), cfg.UniversityConnectorCfg.Retry.Attempts)
}

func TestParse_PostgresRequiresURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestParse_GeminiRequiresKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_GEMINI_API_KEY")
}

func TestParse_MocksSkipProviderChecks(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_SERVICE_URL", "")
	t.Setenv("ENABLE_MOCKS", "true")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.EnableMocks)
}

func TestParse_ExtractionHotterThanChatRejected(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_EXTRACTION_TEMPERATURE", "0.9")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_EXTRACTION_TEMPERATURE")
}

func TestParse_DOCXFollowsLicenseKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UNIOFFICE_LICENSE_KEY", "")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.False(t, cfg.DOCXEnabled())
	assert.False(t, cfg.FileUploadCfg.AllowDOCX)

	t.Setenv("UNIOFFICE_LICENSE_KEY", "metered-key")

	cfg, err = Parse()
	require.NoError(t, err)
	assert.True(t, cfg.DOCXEnabled())
	assert.True(t, cfg.FileUploadCfg.AllowDOCX)
}
