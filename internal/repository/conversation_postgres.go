package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/repository/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversationRepository defines the interface for conversation persistence.
// Every read and write is scoped by id AND owner email; an owner mismatch is
// indistinguishable from a missing record.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conv entity.Conversation) (*entity.Conversation, error)
	GetConversation(ctx context.Context, id, userEmail string) (*entity.Conversation, error)
	ListConversations(ctx context.Context, userEmail string) ([]entity.ConversationSummary, error)
	UpdateConversationMessages(ctx context.Context, id, userEmail string, messages []entity.Turn) error
	DeleteConversations(ctx context.Context, userEmail string) error
}

var _ ConversationRepository = &ConversationPostgres{}

// ConversationPostgres implements ConversationRepository using PostgreSQL
type ConversationPostgres struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewConversationPostgres(db *pgxpool.Pool) *ConversationPostgres {
	return &ConversationPostgres{
		db:      db,
		queries: sqlc.New(db),
	}
}

func (r *ConversationPostgres) CreateConversation(ctx context.Context, conv entity.Conversation) (*entity.Conversation, error) {
	messages, err := encodeTurns(conv.Messages)
	if err != nil {
		return nil, err
	}

	dbConv, err := r.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		UserEmail: conv.UserEmail,
		Title:     conv.Title,
		Messages:  messages,
	})
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return toEntityConversation(&dbConv)
}

func (r *ConversationPostgres) GetConversation(ctx context.Context, id, userEmail string) (*entity.Conversation, error) {
	convID, ok := parseConversationID(id)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	dbConv, err := r.queries.GetConversation(ctx, sqlc.GetConversationParams{
		ID:        convID,
		UserEmail: userEmail,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	return toEntityConversation(&dbConv)
}

func (r *ConversationPostgres) ListConversations(ctx context.Context, userEmail string) ([]entity.ConversationSummary, error) {
	rows, err := r.queries.ListConversations(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	result := make([]entity.ConversationSummary, 0, len(rows))
	for i := range rows {
		result = append(result, toEntityConversationSummary(&rows[i]))
	}

	return result, nil
}

func (r *ConversationPostgres) UpdateConversationMessages(ctx context.Context, id, userEmail string, messages []entity.Turn) error {
	convID, ok := parseConversationID(id)
	if !ok {
		return entity.ErrSessionNotFound
	}

	data, err := encodeTurns(messages)
	if err != nil {
		return err
	}

	affected, err := r.queries.UpdateConversationMessages(ctx, sqlc.UpdateConversationMessagesParams{
		ID:        convID,
		UserEmail: userEmail,
		Messages:  data,
	})
	if err != nil {
		return fmt.Errorf("update conversation messages: %w", err)
	}
	if affected == 0 {
		return entity.ErrSessionNotFound
	}

	return nil
}

func (r *ConversationPostgres) DeleteConversations(ctx context.Context, userEmail string) error {
	if err := r.queries.DeleteConversationsByOwner(ctx, userEmail); err != nil {
		return fmt.Errorf("delete conversations: %w", err)
	}

	return nil
}

// parseConversationID reports false for ids that cannot name any stored row.
func parseConversationID(id string) (pgtype.UUID, bool) {
	convUUID, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, false
	}
	return pgtype.UUID{Bytes: convUUID, Valid: true}, true
}
