package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConversation() *entity.Conversation {
	return &entity.Conversation{
		ID:        "c1",
		UserEmail: "a@x.com",
		Title:     "Tell me about MIT",
		CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		Messages: []entity.Turn{
			{Role: entity.RoleUser, Content: "Tell me about MIT"},
			{Role: entity.RoleAssistant, Content: "MIT is a Dream school for your profile."},
		},
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory(WithDOCX())

	tests := []struct {
		format entity.ResultFormat
		ext    string
	}{
		{entity.FormatMarkdown, ".md"},
		{entity.FormatDOCX, ".docx"},
		{entity.FormatPDF, ".pdf"},
	}
	for _, tt := range tests {
		formatter, err := f.Create(tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.ext, formatter.FileExtension())
	}

	_, err := f.Create("html")
	assert.Error(t, err)
}

func TestFactory_DOCXDisabledByDefault(t *testing.T) {
	_, err := NewFactory().Create(entity.FormatDOCX)
	assert.Error(t, err)

	_, err = NewFactory().Create(entity.FormatPDF)
	assert.NoError(t, err)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testConversation())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Counselling session: Tell me about MIT")
	assert.Contains(t, text, "_Started 2025-03-01 10:30 UTC_")
	assert.Contains(t, text, "## Student\n\nTell me about MIT")
	assert.Contains(t, text, "## Counsellor\n\nMIT is a Dream school")
	assert.Less(t, bytes.Index(out, []byte("## Student")), bytes.Index(out, []byte("## Counsellor")))
}

func TestPDFFormatter_Format(t *testing.T) {
	out, err := NewPDFFormatter().Format(testConversation())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, "application/pdf", NewPDFFormatter().ContentType())
}
