package counsellor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/pkg/response"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase         CounsellorUsecase
	guidanceUsecase GuidanceUsecase
	validator       *validator.Validator
}

func NewHandler(
	usecase CounsellorUsecase,
	guidanceUsecase GuidanceUsecase,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:         usecase,
		guidanceUsecase: guidanceUsecase,
		validator:       validator,
	}
}

// Chat handles POST /counsellor/chat - Answer a student message
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	resp, err := h.usecase.Chat(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// ListSessions handles GET /counsellor/sessions/{email} - List owner sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "email")
	ctx := logger.WithOwner(logger.WithAction(r.Context(), "ListSessions"), email)

	sessions, err := h.usecase.ListSessions(ctx, email)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "sessions listed", zap.Int("count", len(sessions)))

	response.Success(w, sessions)
}

// GetSession handles GET /counsellor/session/{email}/{session_id} - Get owned session
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "email")
	sessionID := pathParam(r, "session_id")

	ctx := logger.WithAction(r.Context(), "GetSession")
	ctx = logger.WithSession(logger.WithOwner(ctx, email), sessionID)

	session, err := h.usecase.GetSession(ctx, email, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// ExportSession handles GET /counsellor/session/{email}/{session_id}/export - Download transcript
func (h *Handler) ExportSession(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "email")
	sessionID := pathParam(r, "session_id")

	ctx := logger.WithAction(r.Context(), "ExportSession")
	ctx = logger.WithSession(logger.WithOwner(ctx, email), sessionID)

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}

	format := entity.ResultFormat(formatParam)
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, "format must be one of: markdown, docx, pdf",
			fmt.Errorf("%w: format %q", entity.ErrInvalidParameter, formatParam))
		return
	}

	file, err := h.usecase.ExportSession(ctx, email, sessionID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}

// Guidance handles POST /counsellor/guidance - Build application checklists
func (h *Handler) Guidance(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Guidance")

	var req entity.GuidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGuidance(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	guidance, err := h.guidanceUsecase.GenerateGuidance(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, guidance)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message, zap.Error(err))
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrSessionNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "session not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrInvalidFormat) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrGenerationFailed) {
		h.respondError(ctx, w, http.StatusBadGateway, "the counsellor could not generate a response", err)
	} else if errors.Is(err, entity.ErrMalformedOutput) {
		h.respondError(ctx, w, http.StatusBadGateway, "the counsellor returned an unreadable response", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}

func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
