package formatter

import (
	"bytes"
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(conv *entity.Conversation) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", documentTitle(conv))
	if !conv.CreatedAt.IsZero() {
		fmt.Fprintf(&buf, "_Started %s_\n\n", conv.CreatedAt.Format(createdLayout))
	}
	for _, turn := range conv.Messages {
		fmt.Fprintf(&buf, "## %s\n\n%s\n\n", roleLabel(turn.Role), turn.Content)
	}
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
