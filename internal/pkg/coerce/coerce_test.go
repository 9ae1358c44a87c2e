package coerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_UnmarshalAndString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kind  Kind
	}{
		{name: "string", input: `"B.Tech"`, want: "B.Tech", kind: KindString},
		{name: "empty string", input: `""`, want: "", kind: KindString},
		{name: "integer", input: `4`, want: "4", kind: KindNumber},
		{name: "float keeps literal", input: `3.80`, want: "3.80", kind: KindNumber},
		{name: "null", input: `null`, want: "", kind: KindNull},
		{name: "list of strings", input: `["Go","SQL","Docker"]`, want: "Go, SQL, Docker", kind: KindList},
		{name: "mixed list", input: `["a", 1, 2.5]`, want: "a, 1, 2.5", kind: KindList},
		{name: "list with null", input: `["a", null]`, want: "a, ", kind: KindList},
		{name: "empty list", input: `[]`, want: "", kind: KindList},
		{name: "bool", input: `true`, want: "true", kind: KindBool},
		{name: "object", input: `{"a": 1}`, want: `{"a":1}`, kind: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestValue_AbsentFieldIsEmpty(t *testing.T) {
	var in struct {
		Skills Value `json:"skills"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))

	assert.True(t, in.Skills.IsNull())
	assert.Equal(t, "", in.Skills.String())
}

func TestOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "string", input: "MIT", want: "MIT"},
		{name: "int", input: 320, want: "320"},
		{name: "float", input: 7.5, want: "7.5"},
		{name: "string slice", input: []string{"a", "b", "c"}, want: "a, b, c"},
		{name: "any slice", input: []any{"x", 1.0, nil}, want: "x, 1, "},
		{name: "json number", input: json.Number("9.10"), want: "9.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.input))
		})
	}
}

func TestValue_MarshalEmitsCanonicalString(t *testing.T) {
	raw, err := json.Marshal(Of([]string{"Stanford", "MIT"}))
	require.NoError(t, err)
	assert.JSONEq(t, `"Stanford, MIT"`, string(raw))
}
