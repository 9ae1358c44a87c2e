package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/integration/common"
	pkghttp "github.com/futig/counsellor-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const responseFormatJSONObject = "json_object"

// Connector talks to an OpenAI-compatible chat completions endpoint.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the ordered messages and returns the text of the first choice.
// Failures are reported as entity.ErrGenerationFailed and are never retried.
func (c *Connector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "requesting completion from LLM service",
		zap.String("purpose", string(req.Purpose)),
		zap.Int("message_count", len(req.Messages)),
	)

	body := &entity.LLMChatCompletionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if body.Model == "" {
		body.Model = c.config.Model
	}
	if req.JSONOutput {
		body.ResponseFormat = &entity.LLMResponseFormat{Type: responseFormatJSONObject}
	}

	var resp entity.LLMChatCompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatEndpoint, body, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %w", entity.ErrGenerationFailed, errors.New("response contains no choices"))
	}

	text := resp.Choices[0].Message.Content
	ctxzap.Info(ctx, "completion received",
		zap.String("purpose", string(req.Purpose)),
		zap.Int("result_length", len(text)),
	)

	return text, nil
}
