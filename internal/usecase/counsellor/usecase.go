package counsellor

import (
	"context"
	"fmt"
	"slices"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/pkg/prompt"
	"github.com/futig/counsellor-backend/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CounsellorUsecase owns the advisory conversation lifecycle. Every call is a
// single fetch, generate, persist cycle; turns on the same session are not
// serialized, so two concurrent turns may overwrite each other's history.
type CounsellorUsecase struct {
	conversationRepo repository.ConversationRepository
	completer        Completer
	formatters       FormatterFactory
	chatProfile      entity.GenerationProfile
	logger           *zap.Logger
}

// NewUsecase creates a new counsellor use case
func NewUsecase(
	conversationRepo repository.ConversationRepository,
	completer Completer,
	formatters FormatterFactory,
	chatProfile entity.GenerationProfile,
	logger *zap.Logger,
) *CounsellorUsecase {
	return &CounsellorUsecase{
		conversationRepo: conversationRepo,
		completer:        completer,
		formatters:       formatters,
		chatProfile:      chatProfile,
		logger:           logger,
	}
}

// Chat answers one student message. With a session id the stored history of
// that owned session is resumed, otherwise a new session is created. The
// returned session id is always set on success.
func (uc *CounsellorUsecase) Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	ctx = logger.WithAction(ctx, "counsellor_chat")
	ctx = logger.WithOwner(ctx, req.UserEmail)

	var (
		sessionID string
		history   []entity.Turn
	)
	if req.SessionID != nil && *req.SessionID != "" {
		conv, err := uc.conversationRepo.GetConversation(ctx, *req.SessionID, req.UserEmail)
		if err != nil {
			return nil, fmt.Errorf("resume session: %w", err)
		}
		sessionID = conv.ID
		history = conv.Messages
		ctx = logger.WithSession(ctx, sessionID)
	}

	reply, err := uc.completer.Complete(ctx, &entity.CompletionRequest{
		Purpose:           entity.PurposeChat,
		Messages:          prompt.Counsellor(req.UserProfile, history, req.Message),
		GenerationProfile: uc.chatProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	merged := append(slices.Clip(history),
		entity.Turn{Role: entity.RoleUser, Content: req.Message},
		entity.Turn{Role: entity.RoleAssistant, Content: reply},
	)

	if sessionID != "" {
		if err := uc.conversationRepo.UpdateConversationMessages(ctx, sessionID, req.UserEmail, merged); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	} else {
		conv, err := uc.conversationRepo.CreateConversation(ctx, entity.Conversation{
			UserEmail: req.UserEmail,
			Title:     entity.ConversationTitle(req.Message),
			Messages:  merged,
		})
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
		sessionID = conv.ID
		ctx = logger.WithSession(ctx, sessionID)
	}

	ctxzap.Info(ctx, "counsellor turn stored",
		zap.Int("turn_count", len(merged)),
	)

	return &entity.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

// ListSessions returns the owner's sessions, newest first
func (uc *CounsellorUsecase) ListSessions(ctx context.Context, userEmail string) ([]entity.ConversationSummary, error) {
	sessions, err := uc.conversationRepo.ListConversations(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// GetSession returns the full session when it exists and belongs to userEmail
func (uc *CounsellorUsecase) GetSession(ctx context.Context, userEmail, sessionID string) (*entity.Conversation, error) {
	conv, err := uc.conversationRepo.GetConversation(ctx, sessionID, userEmail)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return conv, nil
}

// ExportSession renders an owned session transcript in the requested format
func (uc *CounsellorUsecase) ExportSession(
	ctx context.Context, userEmail, sessionID string, format entity.ResultFormat,
) (*entity.ExportedFile, error) {
	ctx = logger.WithAction(ctx, "export_session")

	conv, err := uc.GetSession(ctx, userEmail, sessionID)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidParameter, err)
	}

	content, err := f.Format(conv)
	if err != nil {
		return nil, fmt.Errorf("format session: %w", err)
	}

	ctxzap.Info(ctx, "session exported",
		zap.String("format", string(format)),
		zap.Int("size", len(content)),
	)

	return &entity.ExportedFile{
		Filename:    "session-" + conv.ID + f.FileExtension(),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}
