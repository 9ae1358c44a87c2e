package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileInput_Coerce(t *testing.T) {
	raw := `{
		"id": "",
		"email": "a@x.com",
		"name": null,
		"gpa": 3.8,
		"skills": ["Go", "SQL", 3],
		"budget": 40000,
		"test_scores": {"ielts": 7.5, "gre": "320"}
	}`

	var input ProfileInput
	require.NoError(t, json.Unmarshal([]byte(raw), &input))
	profile := input.Coerce()

	assert.Nil(t, profile.ID)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "", profile.Name)
	assert.Equal(t, "3.8", profile.GPA)
	assert.Equal(t, "Go, SQL, 3", profile.Skills)
	assert.Equal(t, "40000", profile.Budget)
	assert.JSONEq(t, `{}`, string(profile.Checklist))

	require.NotNil(t, profile.TestScores)
	assert.Equal(t, 7.5, profile.TestScores.IELTS)
	assert.Equal(t, "320", profile.TestScores.GRE)
	assert.Equal(t, "", profile.TestScores.TOEFL)
}

func TestProfileInput_CoerceKeepsChecklist(t *testing.T) {
	var input ProfileInput
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@x.com","checklist":[{"task":"SOP","done":false}]}`), &input))

	profile := input.Coerce()

	assert.JSONEq(t, `[{"task":"SOP","done":false}]`, string(profile.Checklist))
	assert.Nil(t, profile.TestScores)
}

func TestConversationTitle(t *testing.T) {
	assert.Equal(t, "Tell me about MIT", ConversationTitle("Tell me about MIT"))

	message := strings.Repeat("a", 50)
	assert.Equal(t, strings.Repeat("a", 40)+"...", ConversationTitle(message))

	exact := strings.Repeat("b", 40)
	assert.Equal(t, exact, ConversationTitle(exact))

	assert.Equal(t, strings.Repeat("é", 40)+"...", ConversationTitle(strings.Repeat("é", 41)))
}

func TestTestScores_NonScalarValuesBecomeStrings(t *testing.T) {
	var input ProfileInput
	raw := `{"email":"a@x.com","test_scores":{"ielts":["7","8"],"gre":{"v":1},"toefl":100,"sat":true,"gmat":"700"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &input))

	profile := input.Coerce()

	require.NotNil(t, profile.TestScores)
	assert.Equal(t, "7, 8", profile.TestScores.IELTS)
	assert.Equal(t, `{"v":1}`, profile.TestScores.GRE)
	assert.Equal(t, float64(100), profile.TestScores.TOEFL)
	assert.Equal(t, "true", profile.TestScores.SAT)
	assert.Equal(t, "700", profile.TestScores.GMAT)
	assert.Equal(t, "", profile.TestScores.ACT)
}

func TestScoreValue(t *testing.T) {
	assert.Nil(t, ScoreValue(nil))
	assert.Equal(t, "7.5", ScoreValue("7.5"))
	assert.Equal(t, 7.5, ScoreValue(7.5))
	assert.Equal(t, "a, b", ScoreValue([]any{"a", "b"}))
}
