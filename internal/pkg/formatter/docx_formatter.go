package formatter

import (
	"bytes"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(conv *entity.Conversation) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(documentTitle(conv))

	if !conv.CreatedAt.IsZero() {
		datePar := doc.AddParagraph()
		dateRun := datePar.AddRun()
		dateRun.Properties().SetItalic(true)
		dateRun.AddText("Started " + conv.CreatedAt.Format(createdLayout))
	}

	for _, turn := range conv.Messages {
		doc.AddParagraph()

		rolePar := doc.AddParagraph()
		rolePar.SetStyle("Heading2")
		rolePar.AddRun().AddText(roleLabel(turn.Role))

		bodyPar := doc.AddParagraph()
		bodyPar.AddRun().AddText(turn.Content)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
