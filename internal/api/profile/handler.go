package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
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

const (
	resumeFormField    = "file"
	multipartMaxMemory = 32 << 20
	// room for the form boundaries and headers around the file
	multipartOverhead  = 1 << 20
)

type Handler struct {
	usecase     ProfileUsecase
	validator   *validator.Validator
	maxFileSize int64
}

func NewHandler(usecase ProfileUsecase, validator *validator.Validator, maxFileSize int64) *Handler {
	return &Handler{
		usecase:     usecase,
		validator:   validator,
		maxFileSize: maxFileSize,
	}
}

// GetProfile handles GET /profile/{email} - Get stored profile, {} when absent
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	email := emailParam(r)
	ctx := logger.WithOwner(logger.WithAction(r.Context(), "GetProfile"), email)

	profile, err := h.usecase.GetProfile(ctx, email)
	if errors.Is(err, entity.ErrProfileNotFound) {
		ctxzap.Debug(ctx, "profile not found")
		response.Success(w, struct{}{})
		return
	}
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, profile)
}

// UpsertProfile handles POST /profile/ - Create or replace a profile
func (h *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UpsertProfile")

	var input entity.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateProfile(&input); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	saved, err := h.usecase.UpsertProfile(ctx, &input)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, entity.ProfileUpsertResponse{
		Message: "Profile saved successfully",
		Data:    saved,
	})
}

// DeleteAccount handles DELETE /profile/{email} - Remove profile and sessions
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	email := emailParam(r)
	ctx := logger.WithOwner(logger.WithAction(r.Context(), "DeleteAccount"), email)

	if err := h.validator.ValidateEmail(email); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.usecase.DeleteAccount(ctx, email); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, map[string]string{
		"message": "Account deleted successfully",
	})
}

// ParseCV handles POST /profile/parse-cv - Extract profile fields from a resume
func (h *Handler) ParseCV(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ParseCV")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to parse form", err)
		return
	}

	file, header, err := r.FormFile(resumeFormField)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "resume file is required",
			fmt.Errorf("%w: %s: %w", entity.ErrMissingField, resumeFormField, err))
		return
	}
	defer file.Close()

	if err := h.validator.ValidateResumeUpload(header); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read file", err)
		return
	}
	if int64(len(data)) > h.maxFileSize {
		h.handleUsecaseError(ctx, w, fmt.Errorf("%w: %s", entity.ErrFileTooLarge, header.Filename))
		return
	}

	ctxzap.Info(ctx, "parsing resume",
		zap.String("filename", header.Filename),
		zap.Int("size", len(data)),
	)

	extracted, err := h.usecase.ParseResume(ctx, header.Filename, data)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, extracted)
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
	if errors.Is(err, entity.ErrProfileNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "profile not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrInvalidFormat) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrInvalidExtension) || errors.Is(err, entity.ErrFileTooLarge) || errors.Is(err, entity.ErrInvalidFile) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid file", err)
	} else if errors.Is(err, entity.ErrEmptyDocument) {
		h.respondError(ctx, w, http.StatusBadRequest, "no text could be extracted from the file", err)
	} else if errors.Is(err, entity.ErrGenerationFailed) || errors.Is(err, entity.ErrMalformedOutput) {
		h.respondError(ctx, w, http.StatusBadGateway, "failed to parse resume", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}

func emailParam(r *http.Request) string {
	value := chi.URLParam(r, "email")
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
