package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

// GeminiConnector completes requests through the Gemini API.
type GeminiConnector struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

func NewGeminiConnector(ctx context.Context, cfg config.LLMConnectorConfig, logger *zap.Logger) (*GeminiConnector, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiConnector{
		client:    client,
		modelName: cfg.Model,
		logger:    logger,
	}, nil
}

func (g *GeminiConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "requesting completion from gemini",
		zap.String("purpose", string(req.Purpose)),
		zap.Int("message_count", len(req.Messages)),
	)

	system, contents := toGeminiContents(req.Messages)

	temp := req.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONOutput {
		cfg.ResponseMIMEType = jsonMIMEType
	}

	model := req.Model
	if model == "" {
		model = g.modelName
	}

	res, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrGenerationFailed, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: %w", entity.ErrGenerationFailed, errors.New("gemini returned empty text"))
	}

	ctxzap.Info(ctx, "completion received",
		zap.String("purpose", string(req.Purpose)),
		zap.Int("result_length", len(text)),
	)

	return text, nil
}

// toGeminiContents folds system messages into one instruction and maps the
// remaining turns onto user and model roles.
func toGeminiContents(messages []entity.ChatMessage) (string, []*genai.Content) {
	var system string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case entity.RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return system, contents
}
