// Package document extracts plain text from uploaded resumes.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ledongthuc/pdf"
	"github.com/unidoc/unioffice/document"
	"go.uber.org/zap"
)

const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
	ExtMD   = ".md"
)

// SupportedExtensions lists the file types ExtractText understands. DOCX
// additionally requires WithDOCX.
var SupportedExtensions = map[string]bool{
	ExtPDF:  true,
	ExtDOCX: true,
	ExtTXT:  true,
	ExtMD:   true,
}

type Extractor struct {
	docx bool
}

type Option func(*Extractor)

// WithDOCX enables .docx input. It needs an active unioffice license.
func WithDOCX() Option {
	return func(e *Extractor) {
		e.docx = true
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText returns the trimmed text content of data, chosen by the extension of filename.
func (e *Extractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ExtPDF:
		text, err = extractPDF(data)
	case ExtDOCX:
		if !e.docx {
			return "", fmt.Errorf("%w: %s is not enabled", entity.ErrInvalidExtension, ext)
		}
		text, err = extractDOCX(data)
	case ExtTXT, ExtMD:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", entity.ErrInvalidExtension, ext)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entity.ErrInvalidFile, filename, err)
	}

	text = strings.TrimSpace(text)
	ctxzap.Debug(ctx, "document text extracted",
		zap.String("filename", filename),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for _, par := range doc.Paragraphs() {
		for _, run := range par.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
