package formatter

import (
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
)

const (
	baseTitle       = "Counselling session"
	createdLayout   = "2006-01-02 15:04 MST"
	studentLabel    = "Student"
	counsellorLabel = "Counsellor"
)

// Formatter renders a session transcript into a downloadable document
type Formatter interface {
	Format(conv *entity.Conversation) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct {
	docx bool
}

type FactoryOpt func(*Factory)

// WithDOCX enables the docx format. It needs an active unioffice license.
func WithDOCX() FactoryOpt {
	return func(f *Factory) {
		f.docx = true
	}
}

func NewFactory(opts ...FactoryOpt) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		if !f.docx {
			return nil, fmt.Errorf("format %s is not enabled", format)
		}
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func roleLabel(role entity.ChatRole) string {
	if role == entity.RoleUser {
		return studentLabel
	}
	return counsellorLabel
}

func documentTitle(conv *entity.Conversation) string {
	if conv.Title == "" {
		return baseTitle
	}
	return baseTitle + ": " + conv.Title
}
