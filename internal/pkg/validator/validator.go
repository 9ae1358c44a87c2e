package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
)

// AllowedResumeExtensions are the resume formats the upload endpoint accepts
var AllowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Validator checks requests at the transport boundary
type Validator struct {
	cfg config.FileUploadConfig
}

func NewValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateResumeUpload validates a single resume upload
func (v *Validator) ValidateResumeUpload(file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedResumeExtensions[ext] {
		return fmt.Errorf("%w: %q (allowed: pdf, docx, txt)", entity.ErrInvalidExtension, ext)
	}
	if ext == ".docx" && !v.cfg.AllowDOCX {
		return fmt.Errorf("%w: %q is not enabled on this server (allowed: pdf, txt)", entity.ErrInvalidExtension, ext)
	}

	if file.Size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, file.Filename, file.Size, v.cfg.MaxFileSize)
	}

	return nil
}

// ValidateQuery validates a free-text search query
func (v *Validator) ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", entity.ErrMissingField)
	}
	return nil
}

// ValidateEmail validates an owner email taken from the path or body
func (v *Validator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email", entity.ErrMissingField)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email %q", entity.ErrInvalidFormat, email)
	}
	return nil
}
