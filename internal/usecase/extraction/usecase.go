package extraction

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/pkg/prompt"
	"github.com/futig/counsellor-backend/internal/pkg/structured"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FailurePolicy decides what a pipeline does when generation or parsing fails.
type FailurePolicy int

const (
	// Propagate returns the failure to the caller.
	Propagate FailurePolicy = iota
	// SwallowToEmpty logs the failure and returns an empty result.
	SwallowToEmpty
)

// ExtractionUsecase turns free-form model output into structured records.
// It keeps no state besides the scholarship result cache.
type ExtractionUsecase struct {
	completer          Completer
	extractionProfile  entity.GenerationProfile
	scholarshipCache   *cache.Cache
	scholarshipFailure FailurePolicy
	logger             *zap.Logger
}

// NewUsecase creates a new extraction use case. extractionProfile should ask
// for structured output at a low temperature.
func NewUsecase(
	completer Completer,
	extractionProfile entity.GenerationProfile,
	scholarshipCache *cache.Cache,
	scholarshipFailure FailurePolicy,
	logger *zap.Logger,
) *ExtractionUsecase {
	return &ExtractionUsecase{
		completer:          completer,
		extractionProfile:  extractionProfile,
		scholarshipCache:   scholarshipCache,
		scholarshipFailure: scholarshipFailure,
		logger:             logger,
	}
}

func (uc *ExtractionUsecase) generate(
	ctx context.Context, purpose entity.GenerationPurpose, messages []entity.ChatMessage,
) (string, error) {
	return uc.completer.Complete(ctx, &entity.CompletionRequest{
		Purpose:           purpose,
		Messages:          messages,
		GenerationProfile: uc.extractionProfile,
	})
}

// ExtractProfile reads profile fields out of resume text. Every profile field
// and every test score key is present in the result; unknown values are "".
func (uc *ExtractionUsecase) ExtractProfile(ctx context.Context, documentText string) (map[string]any, error) {
	ctx = logger.WithAction(ctx, "extract_profile")

	raw, err := uc.generate(ctx, entity.PurposeProfileExtraction, prompt.ProfileExtraction(documentText))
	if err != nil {
		return nil, fmt.Errorf("extract profile: %w", err)
	}

	obj, err := structured.Object(raw)
	if err != nil {
		return nil, fmt.Errorf("extract profile: %w", err)
	}

	result := profileFromObject(obj)
	ctxzap.Info(ctx, "profile extracted", zap.Int("field_count", len(result)))

	return result, nil
}

// GenerateGuidance builds an application checklist per university plus the
// shared entity.GuidanceGeneralKey list. Failures are always returned.
func (uc *ExtractionUsecase) GenerateGuidance(ctx context.Context, req *entity.GuidanceRequest) (entity.Guidance, error) {
	ctx = logger.WithAction(ctx, "generate_guidance")

	raw, err := uc.generate(ctx, entity.PurposeGuidance, prompt.Guidance(req.Universities, req.Country))
	if err != nil {
		return nil, fmt.Errorf("generate guidance: %w", err)
	}

	obj, err := structured.Object(raw)
	if err != nil {
		return nil, fmt.Errorf("generate guidance: %w", err)
	}

	guidance := guidanceFromObject(obj)
	ctxzap.Info(ctx, "guidance generated", zap.Int("university_count", len(guidance)))

	return guidance, nil
}

// SearchScholarships returns at most entity.MaxScholarships records. With the
// SwallowToEmpty policy any failure yields an empty list and a nil error.
func (uc *ExtractionUsecase) SearchScholarships(ctx context.Context, query string) ([]entity.Scholarship, error) {
	ctx = logger.WithAction(ctx, "search_scholarships")

	key := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := uc.scholarshipCache.Get(key); ok {
		ctxzap.Debug(ctx, "scholarships served from cache", zap.String("query", key))
		return slices.Clone(cached.([]entity.Scholarship)), nil
	}

	scholarships, err := uc.searchScholarships(ctx, query)
	if err != nil {
		if uc.scholarshipFailure == SwallowToEmpty {
			ctxzap.Warn(ctx, "scholarship search failed, returning empty result", zap.Error(err))
			return []entity.Scholarship{}, nil
		}
		return nil, err
	}

	if len(scholarships) > 0 {
		uc.scholarshipCache.SetDefault(key, slices.Clone(scholarships))
	}

	ctxzap.Info(ctx, "scholarships found", zap.Int("count", len(scholarships)))

	return scholarships, nil
}

func (uc *ExtractionUsecase) searchScholarships(ctx context.Context, query string) ([]entity.Scholarship, error) {
	raw, err := uc.generate(ctx, entity.PurposeScholarshipSearch, prompt.ScholarshipSearch(query))
	if err != nil {
		return nil, fmt.Errorf("search scholarships: %w", err)
	}

	value, err := structured.Normalize(raw, structured.Options{
		UnwrapKeys: structured.ListUnwrapKeys,
		ExpectList: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search scholarships: %w", err)
	}

	return scholarshipsFromValue(value), nil
}
