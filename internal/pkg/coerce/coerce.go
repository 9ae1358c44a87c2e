// Package coerce collapses heterogeneous JSON input (string, number, list, null)
// into the canonical string form that profile fields are persisted in.
package coerce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ListSeparator joins the elements of a list value.
const ListSeparator = ", "

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindObject
)

// Value is a field that may arrive as a string, a number, a boolean, a list
// of such values or null. Decoding never fails on well-formed JSON and String
// never fails on any variant.
type Value struct {
	kind  Kind
	text  string
	items []Value
}

// Of builds a Value from a plain Go value as produced by encoding/json or by
// callers constructing input programmatically.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return Value{kind: KindString, text: t}
	case json.Number:
		return Value{kind: KindNumber, text: t.String()}
	case bool:
		return Value{kind: KindBool, text: strconv.FormatBool(t)}
	case int:
		return Value{kind: KindNumber, text: strconv.Itoa(t)}
	case int32:
		return Value{kind: KindNumber, text: strconv.FormatInt(int64(t), 10)}
	case int64:
		return Value{kind: KindNumber, text: strconv.FormatInt(t, 10)}
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(t), 'f', -1, 32)}
	case float64:
		return Value{kind: KindNumber, text: strconv.FormatFloat(t, 'f', -1, 64)}
	case []string:
		items := make([]Value, 0, len(t))
		for _, s := range t {
			items = append(items, Value{kind: KindString, text: s})
		}
		return Value{kind: KindList, items: items}
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, Of(item))
		}
		return Value{kind: KindList, items: items}
	case map[string]any:
		raw, err := json.Marshal(t)
		if err != nil {
			return Value{kind: KindObject, text: fmt.Sprint(t)}
		}
		return Value{kind: KindObject, text: string(raw)}
	default:
		return Value{kind: KindString, text: fmt.Sprint(t)}
	}
}

// ToString is shorthand for Of(x).String().
func ToString(x any) string {
	return Of(x).String()
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// String returns the canonical representation: null becomes "", lists are
// joined with ListSeparator after converting each element, numbers keep the
// literal they were written with.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindList:
		parts := make([]string, 0, len(v.items))
		for _, item := range v.items {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ListSeparator)
	default:
		return v.text
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{kind: KindString, text: s}
	case '[':
		var items []Value
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = Value{kind: KindList, items: items}
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = Value{kind: KindObject, text: buf.String()}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Value{kind: KindBool, text: strconv.FormatBool(b)}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value{kind: KindNumber, text: n.String()}
	}

	return nil
}

// MarshalJSON always emits the canonical string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}
