// Package jsontree materializes a JSON document into a read-only tree with
// random access to object fields. The tree keeps the raw bytes of every
// subtree so a caller can re-present any node to a full decoder after
// inspecting it.
package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed document. The zero Value has KindInvalid.
// Values are immutable after Parse and safe for concurrent reads.
type Value struct {
	kind  Kind
	str   string
	num   json.Number
	b     bool
	items []Value
	obj   Object
	raw   []byte
}

// Kind returns the variant of the node.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Number returns the numeric payload with its original text preserved.
// Valid only for KindNumber.
func (v Value) Number() json.Number { return v.num }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Items returns the element nodes of an array. Valid only for KindArray.
func (v Value) Items() []Value { return v.items }

// Object returns the keyed view of an object node. Valid only for
// KindObject.
func (v Value) Object() Object { return v.obj }

// Raw returns the original bytes of this subtree, exactly as they appeared
// in the input. Callers must not modify the returned slice.
func (v Value) Raw() []byte { return v.raw }

// Field is a single name/value member of an object node.
type Field struct {
	Name  string
	Value Value
}

// Object is the randomly accessible keyed view of a JSON object node.
// Fields preserve document order, including duplicates.
type Object struct {
	fields []Field
}

// Len returns the number of members, counting duplicates.
func (o Object) Len() int { return len(o.fields) }

// Keys returns the member names in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Name
	}
	return keys
}

// Get looks up a member by exact name. When the document repeats a key the
// last occurrence wins, matching encoding/json object semantics.
func (o Object) Get(name string) (Value, bool) {
	for i := len(o.fields) - 1; i >= 0; i-- {
		if o.fields[i].Name == name {
			return o.fields[i].Value, true
		}
	}
	return Value{}, false
}

// GetFold looks up a member ignoring case. An exact-case match is preferred
// over a folded one; within each class the last occurrence wins.
func (o Object) GetFold(name string) (Value, bool) {
	if v, ok := o.Get(name); ok {
		return v, true
	}
	for i := len(o.fields) - 1; i >= 0; i-- {
		if strings.EqualFold(o.fields[i].Name, name) {
			return o.fields[i].Value, true
		}
	}
	return Value{}, false
}

// Parse materializes a complete JSON document into a Value. Numbers are kept
// as json.Number so no precision is lost. Anything other than whitespace
// after the first value is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var root json.RawMessage
	if err := dec.Decode(&root); err != nil {
		return Value{}, fmt.Errorf("jsontree: parse: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("jsontree: trailing data after top-level value")
	}
	return parseValue(root)
}

func parseValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, fmt.Errorf("jsontree: empty value")
	}
	switch trimmed[0] {
	case '{':
		obj, err := parseObject(trimmed)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, obj: obj, raw: trimmed}, nil
	case '[':
		items, err := parseArray(trimmed)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindArray, items: items, raw: trimmed}, nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, fmt.Errorf("jsontree: string: %w", err)
		}
		return Value{kind: KindString, str: s, raw: trimmed}, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, fmt.Errorf("jsontree: boolean: %w", err)
		}
		return Value{kind: KindBool, b: b, raw: trimmed}, nil
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return Value{}, fmt.Errorf("jsontree: invalid literal %q", trimmed)
		}
		return Value{kind: KindNull, raw: trimmed}, nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return Value{}, fmt.Errorf("jsontree: number: %w", err)
		}
		return Value{kind: KindNumber, num: n, raw: trimmed}, nil
	}
}

func parseObject(raw []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // consume '{'
		return Object{}, fmt.Errorf("jsontree: object: %w", err)
	}
	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Object{}, fmt.Errorf("jsontree: object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Object{}, fmt.Errorf("jsontree: object key is %T, expected string", keyTok)
		}
		var member json.RawMessage
		if err := dec.Decode(&member); err != nil {
			return Object{}, fmt.Errorf("jsontree: member %q: %w", key, err)
		}
		value, err := parseValue(member)
		if err != nil {
			return Object{}, err
		}
		fields = append(fields, Field{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Object{}, fmt.Errorf("jsontree: object: %w", err)
	}
	return Object{fields: fields}, nil
}

func parseArray(raw []byte) ([]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // consume '['
		return nil, fmt.Errorf("jsontree: array: %w", err)
	}
	var items []Value
	for dec.More() {
		var elem json.RawMessage
		if err := dec.Decode(&elem); err != nil {
			return nil, fmt.Errorf("jsontree: array element %d: %w", len(items), err)
		}
		value, err := parseValue(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, fmt.Errorf("jsontree: array: %w", err)
	}
	return items, nil
}
