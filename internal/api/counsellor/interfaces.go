package counsellor

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
)

type CounsellorUsecase interface {
	Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
	ListSessions(ctx context.Context, userEmail string) ([]entity.ConversationSummary, error)
	GetSession(ctx context.Context, userEmail, sessionID string) (*entity.Conversation, error)
	ExportSession(ctx context.Context, userEmail, sessionID string, format entity.ResultFormat) (*entity.ExportedFile, error)
}

type GuidanceUsecase interface {
	GenerateGuidance(ctx context.Context, req *entity.GuidanceRequest) (entity.Guidance, error)
}
