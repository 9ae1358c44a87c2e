package structured

import (
	"testing"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fences", input: `  {"a":1} `, want: `{"a":1}`},
		{name: "json tag multiline", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence multiline", input: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "inline tag", input: "```json {\"a\":1} ```", want: `{"a":1}`},
		{name: "inline no tag", input: "```{\"a\":1}```", want: `{"a":1}`},
		{name: "prose around fences", input: "Here it is:\n```JSON\n{\"a\":1}\n```\nHope this helps", want: `{"a":1}`},
		{name: "only opening fence", input: "```json\n{\"a\":1}", want: `{"a":1}`},
		{name: "crlf", input: "```json\r\n{\"a\":1}\r\n```", want: `{"a":1}`},
		{name: "number payload inline", input: "```123```", want: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.input))
		})
	}
}

func TestNormalize_FencedAndCleanAreEquivalent(t *testing.T) {
	tests := []struct {
		name  string
		clean string
		want  any
	}{
		{name: "simple object", clean: `{"a":1}`, want: map[string]any{"a": float64(1)}},
		{
			name:  "backticks inside a value",
			clean: `{"General":[{"task":"Format code","details":"wrap it in ` + "```go ... ```" + ` blocks"}]}`,
			want: map[string]any{"General": []any{map[string]any{
				"task":    "Format code",
				"details": "wrap it in ```go ... ``` blocks",
			}}},
		},
		{name: "list", clean: `[{"title":"Fulbright"}]`, want: []any{map[string]any{"title": "Fulbright"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, err := Normalize(tt.clean, Options{})
			require.NoError(t, err)

			fenced, err := Normalize("```json\n"+tt.clean+"\n```", Options{})
			require.NoError(t, err)

			inline, err := Normalize("```json "+tt.clean+" ```", Options{})
			require.NoError(t, err)

			assert.Equal(t, tt.want, clean)
			assert.Equal(t, clean, fenced)
			assert.Equal(t, clean, inline)
		})
	}
}

func TestNormalize_Unwrap(t *testing.T) {
	listOpts := Options{UnwrapKeys: ListUnwrapKeys, ExpectList: true}

	tests := []struct {
		name  string
		input string
		opts  Options
		want  any
	}{
		{name: "wrapped in scholarships", input: `{"scholarships": [1,2]}`, opts: listOpts, want: []any{float64(1), float64(2)}},
		{name: "wrapped in data", input: `{"data": [3]}`, opts: listOpts, want: []any{float64(3)}},
		{name: "wrapped in results", input: `{"results": []}`, opts: listOpts, want: []any{}},
		{name: "first present key wins", input: `{"results": [2], "data": [1]}`, opts: listOpts, want: []any{float64(1)}},
		{name: "bare list", input: `[1,2]`, opts: listOpts, want: []any{float64(1), float64(2)}},
		{name: "no list anywhere", input: `{"other": 1}`, opts: listOpts, want: []any{}},
		{name: "scalar when list expected", input: `"nothing"`, opts: listOpts, want: []any{}},
		{name: "object kept without expectation", input: `{"other": 1}`, opts: Options{}, want: map[string]any{"other": float64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	tests := []string{
		`{"a": 1`,
		"I could not find any scholarships.",
		"```json\n{\"a\": \n```",
		"",
	}

	for _, input := range tests {
		_, err := Normalize(input, Options{UnwrapKeys: ListUnwrapKeys, ExpectList: true})
		require.Error(t, err, input)
		assert.ErrorIs(t, err, entity.ErrMalformedOutput)
	}
}

func TestParse_RecoversOutermostSpan(t *testing.T) {
	got, err := Parse(`Sure! {"name": "Ada", "skills": "Go"} Let me know if you need more.`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ada", "skills": "Go"}, got)

	got, err = Parse(`Results: [{"title": "A"}] done`)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"title": "A"}}, got)
}

func TestObject(t *testing.T) {
	obj, err := Object("```json\n{\"MIT\": []}\n```")
	require.NoError(t, err)
	assert.Contains(t, obj, "MIT")

	_, err = Object(`[1, 2]`)
	assert.ErrorIs(t, err, entity.ErrMalformedOutput)
}
