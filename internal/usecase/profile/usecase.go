package profile

import (
	"context"
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ProfileUsecase implements profile and account business logic
type ProfileUsecase struct {
	profileRepo      repository.ProfileRepository
	conversationRepo repository.ConversationRepository
	textExtractor    TextExtractor
	profileExtractor ProfileExtractor
	logger           *zap.Logger
}

// NewUsecase creates a new profile use case
func NewUsecase(
	profileRepo repository.ProfileRepository,
	conversationRepo repository.ConversationRepository,
	textExtractor TextExtractor,
	profileExtractor ProfileExtractor,
	logger *zap.Logger,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo:      profileRepo,
		conversationRepo: conversationRepo,
		textExtractor:    textExtractor,
		profileExtractor: profileExtractor,
		logger:           logger,
	}
}

func (uc *ProfileUsecase) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetProfile(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile coerces every field to its stored string form and saves the
// profile under its email.
func (uc *ProfileUsecase) UpsertProfile(ctx context.Context, input *entity.ProfileInput) (*entity.Profile, error) {
	ctx = logger.WithAction(ctx, "upsert_profile")

	saved, err := uc.profileRepo.UpsertProfile(ctx, input.Coerce())
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	ctxzap.Info(ctx, "profile saved", zap.String(logger.OwnerKey, saved.Email))

	return saved, nil
}

// DeleteAccount removes the profile, then every session owned by email. The
// two deletes are not atomic: a failure in the second leaves orphaned sessions.
func (uc *ProfileUsecase) DeleteAccount(ctx context.Context, email string) error {
	ctx = logger.WithAction(ctx, "delete_account")
	ctx = logger.WithOwner(ctx, email)

	if err := uc.profileRepo.DeleteProfile(ctx, email); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := uc.conversationRepo.DeleteConversations(ctx, email); err != nil {
		ctxzap.Error(ctx, "profile deleted but sessions remain", zap.Error(err))
		return fmt.Errorf("delete sessions: %w", err)
	}

	ctxzap.Info(ctx, "account deleted")

	return nil
}

// ParseResume extracts the text of an uploaded resume and reads profile
// fields out of it.
func (uc *ProfileUsecase) ParseResume(ctx context.Context, filename string, data []byte) (map[string]any, error) {
	ctx = logger.WithAction(ctx, "parse_resume")

	text, err := uc.textExtractor.ExtractText(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %s", entity.ErrEmptyDocument, filename)
	}

	return uc.profileExtractor.ExtractProfile(ctx, text)
}
