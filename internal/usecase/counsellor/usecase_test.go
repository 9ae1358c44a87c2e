package counsellor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConversations struct {
	convs     map[string]*entity.Conversation
	nextID    int
	createErr error
	updateErr error
	updates   int
}

func newFakeConversations() *fakeConversations {
	return &fakeConversations{convs: map[string]*entity.Conversation{}}
}

func (f *fakeConversations) CreateConversation(_ context.Context, conv entity.Conversation) (*entity.Conversation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	conv.ID = "s" + strings.Repeat("x", f.nextID)
	conv.CreatedAt = time.Now()
	f.convs[conv.ID] = &conv
	return &conv, nil
}

func (f *fakeConversations) GetConversation(_ context.Context, id, userEmail string) (*entity.Conversation, error) {
	conv, ok := f.convs[id]
	if !ok || conv.UserEmail != userEmail {
		return nil, entity.ErrSessionNotFound
	}
	cp := *conv
	cp.Messages = append([]entity.Turn(nil), conv.Messages...)
	return &cp, nil
}

func (f *fakeConversations) ListConversations(_ context.Context, userEmail string) ([]entity.ConversationSummary, error) {
	var out []entity.ConversationSummary
	for _, c := range f.convs {
		if c.UserEmail == userEmail {
			out = append(out, entity.ConversationSummary{ID: c.ID, Title: c.Title, CreatedAt: c.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeConversations) UpdateConversationMessages(_ context.Context, id, userEmail string, messages []entity.Turn) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	conv, ok := f.convs[id]
	if !ok || conv.UserEmail != userEmail {
		return entity.ErrSessionNotFound
	}
	conv.Messages = messages
	return nil
}

func (f *fakeConversations) DeleteConversations(_ context.Context, userEmail string) error {
	for id, c := range f.convs {
		if c.UserEmail == userEmail {
			delete(f.convs, id)
		}
	}
	return nil
}

type fakeCompleter struct {
	reply string
	err   error
	last  *entity.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req *entity.CompletionRequest) (string, error) {
	f.last = req
	return f.reply, f.err
}

var chatProfile = entity.GenerationProfile{Model: "m", Temperature: 0.7, MaxTokens: 1024}

func newTestUsecase(repo *fakeConversations, completer *fakeCompleter) *CounsellorUsecase {
	return NewUsecase(repo, completer, formatter.NewFactory(), chatProfile, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestChat_NewSession(t *testing.T) {
	repo := newFakeConversations()
	completer := &fakeCompleter{reply: "MIT is a Dream school."}
	uc := newTestUsecase(repo, completer)

	resp, err := uc.Chat(context.Background(), &entity.ChatRequest{
		UserEmail:   "a@x.com",
		UserProfile: "GPA 3.8",
		Message:     "Tell me about MIT",
	})

	require.NoError(t, err)
	assert.Equal(t, "MIT is a Dream school.", resp.Response)
	require.NotEmpty(t, resp.SessionID)

	stored := repo.convs[resp.SessionID]
	require.NotNil(t, stored)
	assert.Equal(t, "Tell me about MIT", stored.Title)
	assert.Equal(t, "a@x.com", stored.UserEmail)
	assert.Equal(t, []entity.Turn{
		{Role: entity.RoleUser, Content: "Tell me about MIT"},
		{Role: entity.RoleAssistant, Content: "MIT is a Dream school."},
	}, stored.Messages)

	require.NotNil(t, completer.last)
	assert.Equal(t, entity.PurposeChat, completer.last.Purpose)
	assert.Equal(t, chatProfile, completer.last.GenerationProfile)
	last := completer.last.Messages[len(completer.last.Messages)-1]
	assert.Contains(t, last.Content, "GPA 3.8")
	assert.Contains(t, last.Content, "Tell me about MIT")
}

func TestChat_LongMessageTitleIsTruncated(t *testing.T) {
	repo := newFakeConversations()
	uc := newTestUsecase(repo, &fakeCompleter{reply: "ok"})
	message := strings.Repeat("a", 50)

	resp, err := uc.Chat(context.Background(), &entity.ChatRequest{UserEmail: "a@x.com", Message: message})

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 40)+"...", repo.convs[resp.SessionID].Title)
}

func TestChat_ResumeAppendsInOrder(t *testing.T) {
	repo := newFakeConversations()
	completer := &fakeCompleter{reply: "first reply"}
	uc := newTestUsecase(repo, completer)
	ctx := context.Background()

	first, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "q1"})
	require.NoError(t, err)

	completer.reply = "second reply"
	second, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "q2", SessionID: strPtr(first.SessionID)})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	stored := repo.convs[first.SessionID]
	require.Len(t, stored.Messages, 4)
	assert.Equal(t, "q1", stored.Messages[0].Content)
	assert.Equal(t, "first reply", stored.Messages[1].Content)
	assert.Equal(t, "q2", stored.Messages[2].Content)
	assert.Equal(t, "second reply", stored.Messages[3].Content)

	// system, two history turns, new turn
	assert.Len(t, completer.last.Messages, 4)
	assert.Equal(t, "first reply", completer.last.Messages[2].Content)
	assert.Len(t, repo.convs, 1)
}

func TestChat_ForeignOrMissingSessionIsNotFound(t *testing.T) {
	repo := newFakeConversations()
	completer := &fakeCompleter{reply: "r"}
	uc := newTestUsecase(repo, completer)
	ctx := context.Background()

	owned, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "b@y.com", Message: "hi"})
	require.NoError(t, err)
	completer.last = nil

	for _, id := range []string{owned.SessionID, "missing"} {
		_, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "hi", SessionID: strPtr(id)})
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	}
	assert.Nil(t, completer.last)
	assert.Len(t, repo.convs[owned.SessionID].Messages, 2)
}

func TestChat_GenerationFailurePersistsNothing(t *testing.T) {
	repo := newFakeConversations()
	uc := newTestUsecase(repo, &fakeCompleter{err: entity.ErrGenerationFailed})

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{UserEmail: "a@x.com", Message: "hi"})

	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
	assert.Empty(t, repo.convs)
}

func TestChat_UpdateOfVanishedSessionIsNotFound(t *testing.T) {
	repo := newFakeConversations()
	uc := newTestUsecase(repo, &fakeCompleter{reply: "r"})
	ctx := context.Background()

	first, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "hi"})
	require.NoError(t, err)

	repo.updateErr = entity.ErrSessionNotFound
	_, err = uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "again", SessionID: strPtr(first.SessionID)})

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	assert.Equal(t, 1, repo.updates)
}

func TestChat_CreateFailurePropagates(t *testing.T) {
	repo := newFakeConversations()
	repo.createErr = errors.New("db down")
	uc := newTestUsecase(repo, &fakeCompleter{reply: "r"})

	_, err := uc.Chat(context.Background(), &entity.ChatRequest{UserEmail: "a@x.com", Message: "hi"})

	assert.ErrorContains(t, err, "db down")
}

func TestGetSession_Ownership(t *testing.T) {
	repo := newFakeConversations()
	uc := newTestUsecase(repo, &fakeCompleter{reply: "r"})
	ctx := context.Background()

	created, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "b@y.com", Message: "hi"})
	require.NoError(t, err)

	_, err = uc.GetSession(ctx, "a@x.com", created.SessionID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	conv, err := uc.GetSession(ctx, "b@y.com", created.SessionID)
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 2)

	list, err := uc.ListSessions(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExportSession(t *testing.T) {
	repo := newFakeConversations()
	uc := newTestUsecase(repo, &fakeCompleter{reply: "Consider Toronto."})
	ctx := context.Background()

	created, err := uc.Chat(ctx, &entity.ChatRequest{UserEmail: "a@x.com", Message: "Where should I apply?"})
	require.NoError(t, err)

	file, err := uc.ExportSession(ctx, "a@x.com", created.SessionID, entity.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "session-"+created.SessionID+".md", file.Filename)
	assert.Contains(t, string(file.Content), "Consider Toronto.")

	_, err = uc.ExportSession(ctx, "b@y.com", created.SessionID, entity.FormatMarkdown)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	_, err = uc.ExportSession(ctx, "a@x.com", created.SessionID, "html")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)

	// docx needs a unioffice license, which the test factory does not enable
	_, err = uc.ExportSession(ctx, "a@x.com", created.SessionID, entity.FormatDOCX)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}
