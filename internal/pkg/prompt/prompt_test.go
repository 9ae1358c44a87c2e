package prompt

import (
	"testing"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounsellor_OrderAndLabels(t *testing.T) {
	history := []entity.Turn{
		{Role: entity.RoleUser, Content: "Hi"},
		{Role: entity.RoleAssistant, Content: "Hello! How can I help?"},
	}

	msgs := Counsellor("GPA 3.8, GRE 320", history, "Tell me about MIT")

	require.Len(t, msgs, 4)
	assert.Equal(t, entity.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Dream")
	assert.Contains(t, msgs[0].Content, "Target")
	assert.Contains(t, msgs[0].Content, "Safe")
	assert.Contains(t, msgs[0].Content, "Shortlisted Universities")

	assert.Equal(t, entity.ChatMessage{Role: entity.RoleUser, Content: "Hi"}, msgs[1])
	assert.Equal(t, entity.ChatMessage{Role: entity.RoleAssistant, Content: "Hello! How can I help?"}, msgs[2])

	assert.Equal(t, entity.RoleUser, msgs[3].Role)
	assert.Equal(t, "Student Profile: GPA 3.8, GRE 320\n\nStudent Query: Tell me about MIT", msgs[3].Content)
}

func TestCounsellor_EmptyHistory(t *testing.T) {
	msgs := Counsellor("", nil, "Hello")
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.RoleSystem, msgs[0].Role)
	assert.Equal(t, entity.RoleUser, msgs[1].Role)
}

func TestExtractionPrompts(t *testing.T) {
	profile := ProfileExtraction("Jane Doe\nB.Tech")
	require.Len(t, profile, 2)
	assert.Contains(t, profile[0].Content, `use an empty string ""`)
	assert.Contains(t, profile[0].Content, "Do not invent")
	for _, field := range append(entity.ExtractedProfileFields, entity.TestScoreFields...) {
		assert.Contains(t, profile[0].Content, field+":")
	}
	assert.Equal(t, "CV Text:\nJane Doe\nB.Tech", profile[1].Content)

	guidance := Guidance([]string{"MIT", "Stanford"}, "USA")
	require.Len(t, guidance, 2)
	assert.Contains(t, guidance[0].Content, `"General"`)
	assert.Equal(t, "Universities: MIT, Stanford\nCountry: USA", guidance[1].Content)

	scholarships := ScholarshipSearch("AI masters in Germany")
	require.Len(t, scholarships, 2)
	assert.Contains(t, scholarships[0].Content, "list of 5")
	assert.Equal(t, "Search Query: AI masters in Germany", scholarships[1].Content)
}

func TestPromptsAreDeterministic(t *testing.T) {
	assert.Equal(t, Guidance([]string{"MIT"}, "USA"), Guidance([]string{"MIT"}, "USA"))
	assert.Equal(t, ScholarshipSearch("x"), ScholarshipSearch("x"))
}
