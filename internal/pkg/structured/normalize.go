// Package structured turns generative-model text into JSON-shaped values.
package structured

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/futig/counsellor-backend/internal/entity"
)

const fence = "```"

// ListUnwrapKeys are the wrappers providers commonly put around a requested list.
var ListUnwrapKeys = []string{"scholarships", "data", "results"}

// Options controls how a parsed value is adapted to the shape the caller expects.
type Options struct {
	// UnwrapKeys are tried in order when the parsed value is an object.
	UnwrapKeys []string
	// ExpectList makes a non-list result collapse to an empty list instead of
	// being returned as is.
	ExpectList bool
}

// Normalize strips code fences from raw, parses the remainder as JSON and
// adapts it according to opts. Parse failures wrap entity.ErrMalformedOutput;
// a shape mismatch on an expected list never does.
func Normalize(raw string, opts Options) (any, error) {
	value, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if obj, ok := value.(map[string]any); ok && len(opts.UnwrapKeys) > 0 {
		for _, key := range opts.UnwrapKeys {
			if inner, found := obj[key]; found {
				return inner, nil
			}
		}
	}

	if opts.ExpectList {
		if list, ok := value.([]any); ok {
			return list, nil
		}
		return []any{}, nil
	}

	return value, nil
}

// Parse decodes the text, stripping code fences when it is not clean JSON.
// When the text still does not parse, the outermost object or array span is
// tried once before giving up.
func Parse(raw string) (any, error) {
	if value, err := decode(strings.TrimSpace(raw)); err == nil {
		return value, nil
	}

	text := StripFences(raw)

	value, err := decode(text)
	if err == nil {
		return value, nil
	}

	if span, ok := outermostSpan(text); ok && span != text {
		if recovered, rerr := decode(span); rerr == nil {
			return recovered, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", entity.ErrMalformedOutput, err)
}

// Object parses raw and requires a top-level JSON object.
func Object(raw string) (map[string]any, error) {
	value, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", entity.ErrMalformedOutput, describe(value))
	}
	return obj, nil
}

// StripFences removes a leading fence (with or without a language tag) and a
// trailing fence wherever they sit in the text.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)

	open := strings.Index(text, fence)
	if open < 0 {
		return text
	}

	body := text[open+len(fence):]
	// Skip the language tag, if any, up to the end of the fence line.
	if nl := strings.IndexAny(body, "\n\r"); nl >= 0 && isLanguageTag(body[:nl]) {
		body = body[nl+1:]
	} else if nl < 0 {
		body = trimInlineTag(body)
	}

	if end := strings.LastIndex(body, fence); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}

// trimInlineTag drops a tag written on the same line as the payload, as in
// "```json {...}```".
func trimInlineTag(body string) string {
	i := 0
	for i < len(body) && isTagByte(body[i]) {
		i++
	}
	if i == 0 || i == len(body) {
		return body
	}
	switch body[i] {
	case ' ', '\t', '{', '[':
		return body[i:]
	default:
		return body
	}
}

func isTagByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' || b == '+' || b == '-'
}

func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if !isTagByte(s[i]) {
			return false
		}
	}
	return true
}

func decode(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func outermostSpan(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(text, closer)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", value)
	}
}
