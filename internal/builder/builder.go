package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/counsellor-backend/internal/api"
	contentapi "github.com/futig/counsellor-backend/internal/api/content"
	counsellorapi "github.com/futig/counsellor-backend/internal/api/counsellor"
	profileapi "github.com/futig/counsellor-backend/internal/api/profile"
	universityapi "github.com/futig/counsellor-backend/internal/api/university"
	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/integration/document"
	"github.com/futig/counsellor-backend/internal/integration/llm"
	"github.com/futig/counsellor-backend/internal/integration/university"
	"github.com/futig/counsellor-backend/internal/pkg/formatter"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/futig/counsellor-backend/internal/usecase/counsellor"
	"github.com/futig/counsellor-backend/internal/usecase/extraction"
	"github.com/futig/counsellor-backend/internal/usecase/profile"
	"github.com/patrickmn/go-cache"
	"github.com/unidoc/unioffice/common/license"
	"go.uber.org/zap"
)

type completer interface {
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("storage_driver", cfg.StorageDriver),
	)

	store, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Repositories initialized")

	llmConnector, err := setupCompleter(ctx, cfg, logger)
	if err != nil {
		store.close()
		return nil, err
	}

	universityConnector := university.NewConnector(
		cfg.UniversityConnectorCfg,
		cache.New(cfg.UniversityConnectorCfg.CacheTTL, 2*cfg.UniversityConnectorCfg.CacheTTL),
		logger,
	)
	var (
		extractorOpts []document.Option
		formatterOpts []formatter.FactoryOpt
	)
	if cfg.DOCXEnabled() {
		if err := license.SetMeteredKey(cfg.UniofficeLicenseKey); err != nil {
			store.close()
			return nil, fmt.Errorf("activate unioffice license: %w", err)
		}
		extractorOpts = append(extractorOpts, document.WithDOCX())
		formatterOpts = append(formatterOpts, formatter.WithDOCX())
		logger.Info("DOCX resumes and exports enabled")
	} else {
		logger.Warn("UNIOFFICE_LICENSE_KEY is not set, DOCX resumes and exports are disabled")
	}
	documentExtractor := document.NewExtractor(extractorOpts...)

	// Initialize validators
	requestValidator := validator.NewValidator(cfg.FileUploadCfg)
	logger.Info("Validators initialized")

	llmCfg := cfg.LLMConnectorCfg
	chatProfile := entity.GenerationProfile{
		Model:       llmCfg.Model,
		Temperature: llmCfg.ChatTemperature,
		MaxTokens:   llmCfg.ChatMaxTokens,
	}
	extractionProfile := entity.GenerationProfile{
		Model:       llmCfg.Model,
		Temperature: llmCfg.ExtractionTemperature,
		JSONOutput:  true,
	}

	// Initialize use cases
	extractionUC := extraction.NewUsecase(
		llmConnector,
		extractionProfile,
		cache.New(cfg.ScholarshipCacheTTL, 2*cfg.ScholarshipCacheTTL),
		extraction.SwallowToEmpty,
		logger,
	)

	counsellorUC := counsellor.NewUsecase(
		store.conversations,
		llmConnector,
		formatter.NewFactory(formatterOpts...),
		chatProfile,
		logger,
	)

	profileUC := profile.NewUsecase(
		store.profiles,
		store.conversations,
		documentExtractor,
		extractionUC,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	handlers := api.Handlers{
		Counsellor: counsellorapi.NewHandler(counsellorUC, extractionUC, requestValidator),
		Profile:    profileapi.NewHandler(profileUC, requestValidator, cfg.FileUploadCfg.MaxFileSize),
		Content:    contentapi.NewHandler(extractionUC, requestValidator),
		University: universityapi.NewHandler(universityConnector, requestValidator),
	}
	logger.Info("API handlers initialized")

	router := api.SetupRouter(handlers, cfg.CORSAllowedOrigins, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 130 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:  server,
		storage: store,
		logger:  logger,
	}, nil
}

func setupCompleter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (completer, error) {
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the generation service")
		return llm.NewMockConnector(logger), nil
	}

	switch cfg.LLMConnectorCfg.Provider {
	case config.LLMProviderGemini:
		logger.Info("Using Gemini connector for the generation service")
		connector, err := llm.NewGeminiConnector(ctx, cfg.LLMConnectorCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup gemini connector: %w", err)
		}
		return connector, nil
	default:
		logger.Info("Using OpenAI-compatible connector for the generation service",
			zap.String("url", cfg.LLMConnectorCfg.Url),
		)
		return llm.NewConnector(cfg.LLMConnectorCfg, logger), nil
	}
}
